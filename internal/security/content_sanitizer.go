// Package security はアプリケーションのセキュリティ機能を提供する。
//
// ContentSanitizerService はユーザー入力テキスト（投稿説明、コメント、
// メッセージ、プロフィール文）をサニタイズし、ビュー層に渡る前に
// HTMLタグやスクリプト断片を除去する。
// bluemondayのStrictPolicy（全タグ除去）を使用する。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizerService はテキストサニタイズ機能のインターフェースを定義する。
// ドメインサービスが書き込み操作の前に使用する。
type ContentSanitizerService interface {
	// Sanitize は入力テキストからHTMLタグをすべて除去して返す。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(text string) string
}

// contentSanitizer はContentSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type contentSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer はContentSanitizerServiceの新しいインスタンスを生成する。
// 投稿・コメント・メッセージはプレーンテキストとして扱うため、
// 許可タグを持たないStrictPolicyを使う。script, iframe, style,
// on*イベント属性を含むあらゆるマークアップが除去される。
func NewContentSanitizer() *contentSanitizer {
	return &contentSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は入力テキストからHTMLタグをすべて除去して返す。
// タグ除去後の前後空白は取り除く。
func (s *contentSanitizer) Sanitize(text string) string {
	return strings.TrimSpace(s.policy.Sanitize(text))
}

// nopSanitizer は何も変換しないContentSanitizerServiceの実装。
// SANITIZE_ENABLED=false のときに使う。
type nopSanitizer struct{}

// NewNopSanitizer はサニタイズを行わないContentSanitizerServiceを生成する。
func NewNopSanitizer() *nopSanitizer {
	return &nopSanitizer{}
}

// Sanitize は入力をそのまま返す。
func (s *nopSanitizer) Sanitize(text string) string {
	return text
}
