// Package model はドメインモデルを定義する。
package model

// TimestampNow は新規作成された投稿・コメント・メッセージに付与する表示用ラベル。
const TimestampNow = "الآن"

// Comment は投稿へのコメントを表す。追記専用で、編集・削除はされない。
// IDは作成時刻由来のミリ秒値で、同一投稿のコメント列内で一意。
type Comment struct {
	ID        int64
	User      *User // コメント時点の投稿者スナップショット
	Text      string
	Timestamp string
}

// Clone はCommentの独立したコピーを返す。
func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	cp := *c
	cp.User = c.User.Clone()
	return &cp
}

// Post はフィード上の投稿を表す。
// Userは所有者のスナップショットで、プロフィール更新時に
// 所有投稿すべてへ明示的に張り替えられる。
// Priceは0が未設定を意味する（マーケットプレイス項目は任意）。
type Post struct {
	ID          int
	User        *User
	ImageURL    string
	Description string
	Price       float64
	Brand       string
	Category    string
	Likes       int
	Comments    []*Comment
	Timestamp   string
}

// Clone はPostの独立したコピーを返す。コメント列も複製する。
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	cp := *p
	cp.User = p.User.Clone()
	if p.Comments != nil {
		cp.Comments = make([]*Comment, len(p.Comments))
		for i, c := range p.Comments {
			cp.Comments[i] = c.Clone()
		}
	}
	return &cp
}
