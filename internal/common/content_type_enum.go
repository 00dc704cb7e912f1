package common

import "strings"

// AvatarFileType represents the stored format of an uploaded avatar
type AvatarFileType string

const (
	AvatarFileTypeImage   AvatarFileType = "image"
	AvatarFileTypeUnknown AvatarFileType = "unknown"
)

// String returns the string representation
func (aft AvatarFileType) String() string {
	return string(aft)
}

// IsValid checks if the avatar file type is accepted for upload
func (aft AvatarFileType) IsValid() bool {
	return aft == AvatarFileTypeImage
}

func DetectAvatarType(mimeType string) AvatarFileType {
	if strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return AvatarFileTypeImage
	}
	return AvatarFileTypeUnknown
}
