package prompt

// DetectImageMime inspects the leading file-signature bytes of an image.
// Unrecognized signatures fall back to JPEG.
func DetectImageMime(data []byte) string {
	if len(data) > 2 {
		switch {
		case data[0] == 0x89 && data[1] == 0x50:
			return "image/png"
		case data[0] == 0x47 && data[1] == 0x49:
			return "image/gif"
		case data[0] == 0x52 && data[1] == 0x49:
			return "image/webp"
		}
	}

	return "image/jpeg"
}
