package bmp

import "fmt"

// ColorProfile returns the raw bytes of the ICC profile embedded in a V5
// header. The profile is not parsed. Images without a V5 header, with a
// color space tag other than PROFILE_EMBEDDED/PROFILE_LINKED, or with a
// zero profile size fail with ErrDoesNotExist.
func (f *File) ColorProfile() ([]byte, error) {
	hdr, err := f.DIBHeader()
	if err != nil {
		return nil, err
	}
	v5, ok := hdr.(V5Header)
	if !ok {
		return nil, fmt.Errorf("%w: color profiles need a V5 header", ErrDoesNotExist)
	}
	if v5.ColorSpaceType != ColorSpaceProfileEmbedded && v5.ColorSpaceType != ColorSpaceProfileLinked {
		return nil, fmt.Errorf("%w: color space tag %#x carries no profile",
			ErrDoesNotExist, v5.ColorSpaceType)
	}
	if v5.ProfileSize == 0 {
		return nil, fmt.Errorf("%w: zero-length color profile", ErrDoesNotExist)
	}

	start := dibHeaderOffset + int(v5.ProfileData)
	end := start + int(v5.ProfileSize)
	if start < dibHeaderOffset || end > len(f.data) {
		return nil, fmt.Errorf("%w: profile bytes [%d:%d] in a %d-byte buffer",
			ErrTruncated, start, end, len(f.data))
	}
	profile := make([]byte, v5.ProfileSize)
	copy(profile, f.data[start:end])
	return profile, nil
}
