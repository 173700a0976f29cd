package strictdiff

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// unescaper unescapes selected chars for compatibility with JavaScript's
// encodeURI.
//
// In speed critical applications this could be dropped since the receiving
// application will certainly decode these fine. Note that this function is
// case-sensitive. Thus "%3f" would not be unescaped. But this is ok because
// it is only called with the output of url.QueryEscape which returns
// uppercase hex. Example: "%3F" -> "?", "%24" -> "$", etc.
var unescaper = strings.NewReplacer(
	"%21", "!", "%7E", "~", "%27", "'",
	"%28", "(", "%29", ")", "%3B", ";",
	"%2F", "/", "%3F", "?", "%3A", ":",
	"%40", "@", "%26", "&", "%3D", "=",
	"%2B", "+", "%24", "$", "%2C", ",",
	"%23", "#", "%2A", "*",
)

// Compress encodes s for embedding in a delta string: UTF-8 bytes are
// percent-encoded, then safe printable punctuation and the space character
// are restored to literal form. The result never contains a tab.
func Compress(s string) string {
	return unescaper.Replace(strings.Replace(url.QueryEscape(s), "+", " ", -1))
}

// Decompress reverses Compress. It returns an error on a malformed percent
// escape or when the decoded bytes are not valid UTF-8.
func Decompress(s string) (string, error) {
	// Unescape would turn all "+" to " ".
	s = strings.Replace(s, "+", "%2b", -1)
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("invalid UTF-8 in compressed text: %q", decoded)
	}
	return decoded, nil
}
