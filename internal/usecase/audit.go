package usecase

import (
	"encoding/json"
)

// 監査ログ用にJSON文字列にする
func auditJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
