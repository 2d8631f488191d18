// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// ビュー層に表示する原因カテゴリと対処方法を含む。
// メッセージはプロダクトのロケール（アラビア語）で保持する。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, post, conversation
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidCredentials   = "INVALID_CREDENTIALS"
	ErrCodeUsernameTaken        = "USERNAME_TAKEN"
	ErrCodeNotAuthenticated     = "NOT_AUTHENTICATED"
	ErrCodeEmptyContent         = "EMPTY_CONTENT"
	ErrCodeInvalidImageURL      = "INVALID_IMAGE_URL"
	ErrCodePostNotFound         = "POST_NOT_FOUND"
	ErrCodeNotPostOwner         = "NOT_POST_OWNER"
	ErrCodeDeleteNotRequested   = "DELETE_NOT_REQUESTED"
	ErrCodeUserNotFound         = "USER_NOT_FOUND"
	ErrCodeSelfConversation     = "SELF_CONVERSATION"
	ErrCodeConversationNotFound = "CONVERSATION_NOT_FOUND"
	ErrCodeUserMismatch         = "USER_MISMATCH"
)

// NewInvalidCredentialsError はログイン失敗エラーを生成する。
// ユーザー不在とパスワード不一致は区別しない。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "اسم المستخدم أو كلمة المرور غير صحيحة.",
		Category: "auth",
		Action:   "تأكد من اسم المستخدم وكلمة المرور ثم حاول مرة أخرى.",
	}
}

// NewUsernameTakenError はユーザー名衝突エラーを生成する。
// 比較は大文字小文字を区別しない。
func NewUsernameTakenError(username string) *APIError {
	return &APIError{
		Code:     ErrCodeUsernameTaken,
		Message:  "اسم المستخدم موجود بالفعل. الرجاء اختيار اسم آخر.",
		Category: "auth",
		Action:   fmt.Sprintf("اختر اسم مستخدم مختلفاً عن %q.", username),
	}
}

// NewNotAuthenticatedError は未認証状態での操作エラーを生成する。
func NewNotAuthenticatedError() *APIError {
	return &APIError{
		Code:     ErrCodeNotAuthenticated,
		Message:  "يجب تسجيل الدخول أولاً.",
		Category: "auth",
		Action:   "سجّل الدخول ثم أعد المحاولة.",
	}
}

// NewEmptyContentError は空テキストの投稿・コメント・メッセージエラーを生成する。
func NewEmptyContentError() *APIError {
	return &APIError{
		Code:     ErrCodeEmptyContent,
		Message:  "لا يمكن نشر محتوى فارغ.",
		Category: "validation",
		Action:   "اكتب نصاً غير فارغ ثم أعد المحاولة.",
	}
}

// NewInvalidImageURLError は画像URLが解決できない場合のエラーを生成する。
func NewInvalidImageURLError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidImageURL,
		Message:  fmt.Sprintf("رابط الصورة غير صالح: %s", reason),
		Category: "validation",
		Action:   "اختر صورة صالحة ثم أعد المحاولة.",
	}
}

// NewPostNotFoundError は投稿未検出エラーを生成する。
func NewPostNotFoundError(postID int) *APIError {
	return &APIError{
		Code:     ErrCodePostNotFound,
		Message:  fmt.Sprintf("لم يتم العثور على المنشور: %d", postID),
		Category: "post",
		Action:   "تأكد من أن المنشور ما زال موجوداً.",
	}
}

// NewNotPostOwnerError は所有者以外による投稿削除エラーを生成する。
func NewNotPostOwnerError(postID int) *APIError {
	return &APIError{
		Code:     ErrCodeNotPostOwner,
		Message:  fmt.Sprintf("لا يمكنك حذف منشور لا تملكه: %d", postID),
		Category: "post",
		Action:   "يمكن حذف منشوراتك الخاصة فقط.",
	}
}

// NewDeleteNotRequestedError は削除リクエストが無い状態での確定エラーを生成する。
func NewDeleteNotRequestedError() *APIError {
	return &APIError{
		Code:     ErrCodeDeleteNotRequested,
		Message:  "لا يوجد طلب حذف مطابق.",
		Category: "post",
		Action:   "اطلب الحذف أولاً ثم أكّده.",
	}
}

// NewUserNotFoundError はユーザー未検出エラーを生成する。
func NewUserNotFoundError(userID int) *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  fmt.Sprintf("لم يتم العثور على المستخدم: %d", userID),
		Category: "auth",
		Action:   "تأكد من هوية المستخدم.",
	}
}

// NewSelfConversationError は自分自身との会話開始エラーを生成する。
func NewSelfConversationError() *APIError {
	return &APIError{
		Code:     ErrCodeSelfConversation,
		Message:  "لا يمكنك مراسلة نفسك.",
		Category: "conversation",
		Action:   "اختر مستخدماً آخر للمراسلة.",
	}
}

// NewConversationNotFoundError は会話未検出エラーを生成する。
func NewConversationNotFoundError(conversationID int) *APIError {
	return &APIError{
		Code:     ErrCodeConversationNotFound,
		Message:  fmt.Sprintf("لم يتم العثور على المحادثة: %d", conversationID),
		Category: "conversation",
		Action:   "افتح المحادثة من قائمة الرسائل.",
	}
}

// NewUserMismatchError はセッションユーザー以外のプロフィール更新エラーを生成する。
func NewUserMismatchError() *APIError {
	return &APIError{
		Code:     ErrCodeUserMismatch,
		Message:  "لا يمكنك تعديل ملف مستخدم آخر.",
		Category: "auth",
		Action:   "يمكن تعديل ملفك الشخصي فقط.",
	}
}
