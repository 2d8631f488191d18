package security

import (
	"strings"
	"testing"
)

// TestSanitize_StripsAllMarkup は全タグが除去されることを検証する。
// 投稿・コメント・メッセージはプレーンテキストとして扱う。
func TestSanitize_StripsAllMarkup(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "プレーンテキストはそのまま通過する",
			input: "فستان سهرة أنيق باللون الأحمر",
			want:  "فستان سهرة أنيق باللون الأحمر",
		},
		{
			name:  "scriptタグは内容ごと除去される",
			input: "<script>alert('xss')</script>نص آمن",
			want:  "نص آمن",
		},
		{
			name:  "装飾タグはテキストを残して除去される",
			input: "<b>قطعة</b> <i>جميلة</i>",
			want:  "قطعة جميلة",
		},
		{
			name:  "aタグは除去されテキストのみ残る",
			input: `<a href="https://evil.example">اضغط هنا</a>`,
			want:  "اضغط هنا",
		},
		{
			name:  "前後の空白はトリムされる",
			input: "  تنسيق كاجوال  ",
			want:  "تنسيق كاجوال",
		},
		{
			name:  "空文字列は空のまま",
			input: "",
			want:  "",
		},
		{
			name:  "タグのみの入力は空になる",
			input: "<div><span></span></div>",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestSanitize_EventAttributes はon*イベント属性つきタグの除去を検証する。
func TestSanitize_EventAttributes(t *testing.T) {
	sanitizer := NewContentSanitizer()

	got := sanitizer.Sanitize(`<img src="x" onerror="alert(1)">صورة`)
	if strings.Contains(got, "onerror") || strings.Contains(got, "<img") {
		t.Errorf("Sanitize left markup in output: %q", got)
	}
}

// TestSanitize_Idempotent は同一入力に対する冪等性を検証する。
func TestSanitize_Idempotent(t *testing.T) {
	sanitizer := NewContentSanitizer()

	input := "<b>قطعة</b> جميلة"
	once := sanitizer.Sanitize(input)
	twice := sanitizer.Sanitize(once)
	if once != twice {
		t.Errorf("Sanitize is not idempotent: %q != %q", once, twice)
	}
}

// TestNopSanitizer_PassesThrough は無効化時の素通し動作を検証する。
func TestNopSanitizer_PassesThrough(t *testing.T) {
	sanitizer := NewNopSanitizer()

	input := "<b>نص</b>  "
	if got := sanitizer.Sanitize(input); got != input {
		t.Errorf("NopSanitizer altered input: %q -> %q", input, got)
	}
}
