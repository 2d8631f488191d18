// Package repository はドメインコレクションへのアクセスインターフェースを定義する。
// 本リポジトリのスコープでは実装はインメモリのみだが、
// 将来の永続化実装と差し替え可能な形に揃えてある。
package repository

import (
	"context"

	"github.com/hitoshi/stylati/internal/model"
)

// UserRepository はユーザーコレクションへのアクセスインターフェース。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.User, error)

	// FindByUsername はユーザー名でユーザーを検索する。
	// 比較は大文字小文字を区別しない。見つからない場合はnilを返す。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Create はユーザーを作成する。IDが0の場合は次のIDを採番する。
	// 採番済みIDはuser.IDへ書き戻される。
	Create(ctx context.Context, user *model.User) error

	// Update は既存ユーザーのレコードを置き換える。
	Update(ctx context.Context, user *model.User) error

	// List は全ユーザーを登録順で返す。
	List(ctx context.Context) ([]*model.User, error)
}

// PostRepository は投稿コレクション（フィード）へのアクセスインターフェース。
// フィードは常に新しい順で保持される。
type PostRepository interface {
	// FindByID は指定IDの投稿を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.Post, error)

	// Create は投稿を作成し、フィードの先頭に挿入する。
	// IDが0の場合は次のIDを採番しpost.IDへ書き戻す。
	// IDは単調増加で、削除後も再利用しない。
	Create(ctx context.Context, post *model.Post) error

	// Update は既存投稿のレコードを置き換える。フィード内の位置は変えない。
	Update(ctx context.Context, post *model.Post) error

	// Delete は指定IDの投稿を削除する。
	Delete(ctx context.Context, id int) error

	// ListFeed は全投稿を新しい順で返す。
	ListFeed(ctx context.Context) ([]*model.Post, error)

	// ListByUserID は指定ユーザーが所有する投稿をフィード順で返す。
	ListByUserID(ctx context.Context, userID int) ([]*model.Post, error)

	// Search は説明・ブランド・カテゴリに対する部分一致検索を行う。
	// 比較は大文字小文字を区別しない。空白のみのクエリは空の結果を返す。
	Search(ctx context.Context, query string) ([]*model.Post, error)

	// AppendComment は指定投稿のコメント列末尾へコメントを追記する。
	// IDが0の場合は作成時刻由来のIDを採番しcomment.IDへ書き戻す。
	AppendComment(ctx context.Context, postID int, comment *model.Comment) error

	// UpdateOwner は指定ユーザーが所有する全投稿の所有者スナップショットを
	// 新しいレコードへ張り替える。
	UpdateOwner(ctx context.Context, owner *model.User) error
}

// ConversationRepository は会話コレクションへのアクセスインターフェース。
// 会話リストは直近アクティブ順で保持される。
type ConversationRepository interface {
	// FindByID は指定IDの会話を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.Conversation, error)

	// FindByCounterpartID は相手ユーザーIDで会話を検索する。
	// 会話の同一性は会話IDではなく相手の同一性で判定する。
	// 見つからない場合はnilを返す。
	FindByCounterpartID(ctx context.Context, userID int) (*model.Conversation, error)

	// Create は会話を作成し、会話リストの先頭に挿入する。
	// IDが0の場合は次のIDを採番しconversation.IDへ書き戻す。
	Create(ctx context.Context, conversation *model.Conversation) error

	// List は全会話を直近アクティブ順で返す。
	List(ctx context.Context) ([]*model.Conversation, error)

	// AppendMessage は指定会話のメッセージ列末尾へメッセージを追記し、
	// その会話を会話リストの先頭へ移動する。
	// IDが0の場合は作成時刻由来のIDを採番しmessage.IDへ書き戻す。
	AppendMessage(ctx context.Context, conversationID int, message *model.Message) error
}
