// Package model はドメインモデルを定義する。
package model

// Session は認証済みセッションを表す。
// 同時に存在する認証済みユーザーは最大1人。
// Userはセッション側にキャッシュされたユーザーレコードであり、
// Usersコレクション側の更新（投稿数の増減、プロフィール編集）と
// 同期して更新される。
// likedPostIDsはセッションユーザーが現在いいねしている投稿IDの集合で、
// UserにもPostにも保存されない閲覧者ごとの派生関係。
type Session struct {
	User         *User
	likedPostIDs map[int]struct{}
}

// NewSession は指定ユーザーで認証済みセッションを生成する。
func NewSession(u *User) *Session {
	return &Session{
		User:         u,
		likedPostIDs: make(map[int]struct{}),
	}
}

// Likes はセッションユーザーが指定投稿をいいね済みかを返す。
func (s *Session) Likes(postID int) bool {
	_, ok := s.likedPostIDs[postID]
	return ok
}

// ToggleLike は指定投稿IDのいいね集合内の所属を反転し、
// 反転後にいいね済みかどうかを返す。
func (s *Session) ToggleLike(postID int) bool {
	if s.Likes(postID) {
		delete(s.likedPostIDs, postID)
		return false
	}
	s.likedPostIDs[postID] = struct{}{}
	return true
}

// Unlike は指定投稿IDをいいね集合から取り除く。
// 投稿削除時に対応するいいね状態を掃除するために使う。
func (s *Session) Unlike(postID int) {
	delete(s.likedPostIDs, postID)
}

// LikedPostIDs はいいね済み投稿IDのコピーを返す。
func (s *Session) LikedPostIDs() []int {
	ids := make([]int, 0, len(s.likedPostIDs))
	for id := range s.likedPostIDs {
		ids = append(ids, id)
	}
	return ids
}
