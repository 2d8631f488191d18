// Package model はドメインモデルを定義する。
package model

// User はサービス利用ユーザーを表す。
// Usernameは大文字小文字を区別せずに全ユーザー間で一意。
// Passwordは模擬認証用の不透明文字列であり、完全一致（大文字小文字を区別）で比較する。
// ハッシュ化や本物の認証は本リポジトリのスコープ外。
type User struct {
	ID         int
	Username   string
	Password   string `json:"-"`
	FullName   string
	AvatarURL  string
	Bio        string
	Followers  int
	Following  int
	PostsCount int

	// SNSリンク（任意項目、空文字は未設定）
	Instagram string
	Twitter   string
	Website   string
}

// Clone はUserの独立したコピーを返す。
// 投稿やコメントに埋め込むスナップショットの生成に使う。
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
