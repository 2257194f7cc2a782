package recommend

import "errors"

// ErrNoRecommendService indicates that no recommend service was provided.
var ErrNoRecommendService = errors.New("recommend service is required")
