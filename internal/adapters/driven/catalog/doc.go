// Package catalog holds helpers shared by the file-based catalog sources.
//
// Sub-packages implement driven.CatalogSource for one format each:
//
//   - csvfile: comma-separated text with a header row
//   - parquetfile: Apache Parquet
//
// Both accept the column names listed in domain.TitleColumns and
// domain.CombinedTextColumns.
package catalog
