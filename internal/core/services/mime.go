package services

import "strings"

// Fixed extension table for building data URLs. Anything unknown falls back
// to a generic octet stream.
var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"bmp":  "image/bmp",
	"ico":  "image/x-icon",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"ogg":  "video/ogg",
	"mov":  "video/quicktime",
}

func MimeTypeFor(filename string) string {
	name := strings.ToLower(filename)
	ext := name[strings.LastIndex(name, ".")+1:]
	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}
	return "application/octet-stream"
}
