// Package file stores cinematch settings in a TOML file, by default
// ~/.cinematch/config.toml. Dot keys such as "posters.api_key" are written
// as nested tables ([posters] api_key = "...").
package file
