package security

import (
	"net/url"
	"strings"

	"github.com/hitoshi/stylati/internal/model"
)

// 投稿画像として受け付けるURLスキーム。
// blob:とdata:はビュー層がローカル選択画像を解決した結果として渡してくる。
var allowedImageSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"blob":  {},
	"data":  {},
}

// ValidateImageURL は投稿画像URLが解決済みとみなせるかを検証する。
// ネットワークアクセスは行わず、構文上の検証のみを行う。
// 不正な場合はmodel.APIError(INVALID_IMAGE_URL)を返す。
func ValidateImageURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.NewInvalidImageURLError("empty url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return model.NewInvalidImageURLError(err.Error())
	}
	if _, ok := allowedImageSchemes[u.Scheme]; !ok {
		return model.NewInvalidImageURLError("unsupported scheme: " + u.Scheme)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return model.NewInvalidImageURLError("missing host")
		}
	case "blob", "data":
		if u.Opaque == "" && u.Path == "" && u.Host == "" {
			return model.NewInvalidImageURLError("empty payload")
		}
	}
	return nil
}
