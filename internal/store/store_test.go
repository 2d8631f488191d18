package store

import (
	"context"
	"testing"

	"github.com/hitoshi/stylati/internal/auth"
	"github.com/hitoshi/stylati/internal/messaging"
	"github.com/hitoshi/stylati/internal/metrics"
	"github.com/hitoshi/stylati/internal/post"
	"github.com/hitoshi/stylati/internal/repository"
	"github.com/hitoshi/stylati/internal/security"
	"github.com/hitoshi/stylati/internal/seed"
	"github.com/hitoshi/stylati/internal/user"
)

// newTestStore はシード済みのストアを組み立てる。
func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	users := repository.NewMemoryUserRepository()
	posts := repository.NewMemoryPostRepository()
	conversations := repository.NewMemoryConversationRepository()
	if err := seed.Load(ctx, users, posts, conversations); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	sanitizer := security.NewContentSanitizer()
	authSvc := auth.NewService(users, sanitizer)
	postSvc := post.NewService(posts, users, authSvc, sanitizer)
	messagingSvc := messaging.NewService(conversations, users, authSvc, sanitizer)
	userSvc := user.NewService(users, posts, authSvc, sanitizer)

	return New(authSvc, postSvc, messagingSvc, userSvc, metrics.Nop{})
}

// TestStore_Login_ReturnsBoolean はログインが真偽値で結果を返すことを検証する。
func TestStore_Login_ReturnsBoolean(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if st.Login(ctx, "sara_fashion", "wrong") {
		t.Error("login with wrong password should return false")
	}
	if st.IsAuthenticated() {
		t.Error("failed login must leave the store anonymous")
	}

	if !st.Login(ctx, "SARA_FASHION", "password123") {
		t.Error("login with correct credentials should return true")
	}
	if u := st.CurrentUser(); u == nil || u.Username != "sara_fashion" {
		t.Errorf("CurrentUser = %+v, want sara_fashion", u)
	}
}

// TestStore_SignUp_ReturnsBoolean はサインアップの真偽値ポリシーを検証する。
func TestStore_SignUp_ReturnsBoolean(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if st.SignUp(ctx, "Another Sara", "SARA_FASHION", "x") {
		t.Error("sign-up with a taken username should return false")
	}
	if !st.SignUp(ctx, "ليلى حسن", "layla_h", "secret") {
		t.Error("sign-up with a fresh username should return true")
	}
	if u := st.CurrentUser(); u == nil || u.Username != "layla_h" {
		t.Error("sign-up should log the new user in")
	}
}

// TestStore_WriteOps_SilentlyNoOpWhenAnonymous は未認証時の書き込み操作が
// 例外を投げず「静かに何もしない」ことを検証する。
func TestStore_WriteOps_SilentlyNoOpWhenAnonymous(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	before := st.Feed(ctx)

	if p := st.CreatePost(ctx, post.CreateInput{Description: "x", ImageURL: "https://example.com/x.jpg"}); p != nil {
		t.Error("anonymous CreatePost should return nil")
	}
	if _, ok := st.RequestDeletePost(ctx, 1); ok {
		t.Error("anonymous RequestDeletePost should return false")
	}
	st.ToggleLike(ctx, 1)
	if c := st.AddComment(ctx, 1, "تعليق"); c != nil {
		t.Error("anonymous AddComment should return nil")
	}
	if conv := st.StartConversation(ctx, 2); conv != nil {
		t.Error("anonymous StartConversation should return nil")
	}
	if m := st.SendMessage(ctx, 1, "مرحبا"); m != nil {
		t.Error("anonymous SendMessage should return nil")
	}
	if u := st.UpdateProfile(ctx, st.CurrentUser()); u != nil {
		t.Error("anonymous UpdateProfile should return nil")
	}

	after := st.Feed(ctx)
	if len(after) != len(before) {
		t.Error("anonymous write attempts must not change the feed")
	}
	if after[0].Likes != before[0].Likes {
		t.Error("anonymous ToggleLike must not change like counts")
	}
}

// TestStore_IsLiked_FalseWhenAnonymous は未認証時のいいね照会を検証する。
func TestStore_IsLiked_FalseWhenAnonymous(t *testing.T) {
	st := newTestStore(t)

	if st.IsLiked(1) {
		t.Error("anonymous IsLiked should be false")
	}
}

// TestStore_ToggleLike_RoundTrip はファサード経由のいいね往復を検証する。
func TestStore_ToggleLike_RoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	if !st.Login(ctx, "sara_fashion", "password123") {
		t.Fatal("fixture login failed")
	}

	baseline := st.Feed(ctx)[0].Likes
	postID := st.Feed(ctx)[0].ID

	st.ToggleLike(ctx, postID)
	if !st.IsLiked(postID) {
		t.Error("post should be liked after first toggle")
	}
	if got := st.Feed(ctx)[0].Likes; got != baseline+1 {
		t.Errorf("Likes = %d, want %d", got, baseline+1)
	}

	st.ToggleLike(ctx, postID)
	if st.IsLiked(postID) {
		t.Error("post should be un-liked after second toggle")
	}
	if got := st.Feed(ctx)[0].Likes; got != baseline {
		t.Errorf("Likes = %d, want restored %d", got, baseline)
	}

	// 不在投稿へのトグルは何もしない
	st.ToggleLike(ctx, 9999)
}

// TestStore_DeleteProtocol はファサード経由の二段階削除を検証する。
func TestStore_DeleteProtocol(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	if !st.Login(ctx, "sara_fashion", "password123") {
		t.Fatal("fixture login failed")
	}

	created := st.CreatePost(ctx, post.CreateInput{
		Description: "حقيبة للبيع",
		ImageURL:    "https://picsum.photos/seed/x/400/500",
	})
	if created == nil {
		t.Fatal("CreatePost returned nil")
	}

	// 非所有投稿: シード投稿1の所有者はnoor_closet
	if _, ok := st.RequestDeletePost(ctx, 1); ok {
		t.Error("requesting deletion of another user's post should return false")
	}

	token, ok := st.RequestDeletePost(ctx, created.ID)
	if !ok {
		t.Fatal("owner should be able to request deletion")
	}
	if st.ConfirmDeletePost(ctx, token, false) {
		t.Error("declined confirmation should return false")
	}
	if st.ConfirmDeletePost(ctx, token, true) {
		t.Error("a declined token must not be reusable")
	}

	token, ok = st.RequestDeletePost(ctx, created.ID)
	if !ok {
		t.Fatal("re-request should succeed")
	}
	if !st.ConfirmDeletePost(ctx, token, true) {
		t.Error("confirmed deletion should return true")
	}
	for _, p := range st.Feed(ctx) {
		if p.ID == created.ID {
			t.Error("deleted post should be gone from the feed")
		}
	}
}

// TestStore_Conversations_Flow はファサード経由の会話フローを検証する。
func TestStore_Conversations_Flow(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	if !st.Login(ctx, "sara_fashion", "password123") {
		t.Fatal("fixture login failed")
	}

	// 自分自身との会話は開始できない
	if conv := st.StartConversation(ctx, 1); conv != nil {
		t.Error("self conversation should return nil")
	}

	// シード会話の相手はnoor_closet(3): 既存会話が再利用される
	existing := st.StartConversation(ctx, 3)
	if existing == nil || existing.ID != 1 {
		t.Fatalf("StartConversation(3) = %+v, want seeded conversation 1", existing)
	}

	fresh := st.StartConversation(ctx, 2)
	if fresh == nil || len(fresh.Messages) != 0 {
		t.Fatalf("StartConversation(2) = %+v, want fresh empty conversation", fresh)
	}

	msg := st.SendMessage(ctx, existing.ID, "هل مازال متوفر؟")
	if msg == nil {
		t.Fatal("SendMessage returned nil")
	}

	list := st.Conversations(ctx)
	if list[0].ID != existing.ID {
		t.Errorf("conversation head = %d, want most recently active %d", list[0].ID, existing.ID)
	}
}

// TestStore_SearchPosts はファサード経由の検索を検証する。
func TestStore_SearchPosts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	hits := st.SearchPosts(ctx, "فستان")
	if len(hits) != 1 || hits[0].ID != 1 {
		t.Errorf("SearchPosts(فستان) = %d hits, want seeded post 1", len(hits))
	}
	if hits := st.SearchPosts(ctx, "   "); len(hits) != 0 {
		t.Error("blank query should return no results")
	}
}

// TestStore_PostsByUser は所有者での絞り込みを検証する。
func TestStore_PostsByUser(t *testing.T) {
	st := newTestStore(t)

	posts := st.PostsByUser(context.Background(), 1)
	if len(posts) != 1 || posts[0].User.Username != "sara_fashion" {
		t.Errorf("PostsByUser(1) = %d posts, want the seeded sara_fashion post", len(posts))
	}
}

// TestStore_Logout はログアウト後の状態を検証する。
func TestStore_Logout(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	if !st.Login(ctx, "sara_fashion", "password123") {
		t.Fatal("fixture login failed")
	}

	before := len(st.Feed(ctx))
	st.Logout()

	if st.IsAuthenticated() {
		t.Error("store should be anonymous after logout")
	}
	if st.CurrentUser() != nil {
		t.Error("CurrentUser should be nil after logout")
	}
	if len(st.Feed(ctx)) != before {
		t.Error("logout must not touch the feed")
	}
}
