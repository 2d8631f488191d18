// Package seed は起動時にストアへ投入する固定フィクスチャを提供する。
// 本リポジトリのスコープでは永続化層が存在しないため、
// このフィクスチャが永続化層の代わりとなる。
// 内容: ユーザー3人、投稿3件（1件はコメント付き）、メッセージ2件を持つ会話1件。
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/stylati/internal/model"
	"github.com/hitoshi/stylati/internal/repository"
)

// Users はフィクスチャのユーザーを生成して返す。
func Users() []*model.User {
	return []*model.User{
		{
			ID:         1,
			Username:   "sara_fashion",
			Password:   "password123",
			FullName:   "سارة عبدالله",
			AvatarURL:  "https://picsum.photos/id/1027/200/200",
			Bio:        "أحب الموضة والأناقة ✨ أشارككم تنسيقاتي اليومية.",
			Followers:  1250,
			Following:  320,
			PostsCount: 1,
			Instagram:  "sara.fashion",
			Twitter:    "sara_tweets",
			Website:    "sara-styles.com",
		},
		{
			ID:         2,
			Username:   "ahmed_style",
			Password:   "password123",
			FullName:   "أحمد خالد",
			AvatarURL:  "https://picsum.photos/id/1005/200/200",
			Bio:        "مستشار مظهر | مهتم بأزياء الرجال.",
			Followers:  850,
			Following:  150,
			PostsCount: 1,
			Instagram:  "ahmedstyle",
		},
		{
			ID:         3,
			Username:   "noor_closet",
			Password:   "password123",
			FullName:   "نور علي",
			AvatarURL:  "https://picsum.photos/id/1011/200/200",
			Bio:        "خزانتي للبيع 🛍️ قطع فريدة بأسعار مميزة.",
			Followers:  2300,
			Following:  500,
			PostsCount: 1,
		},
	}
}

// Posts はフィクスチャの投稿をフィード順（新しい順）で生成して返す。
func Posts(users []*model.User) []*model.Post {
	return []*model.Post{
		{
			ID:          1,
			User:        users[2].Clone(),
			ImageURL:    "https://picsum.photos/id/21/600/800",
			Description: "فستان سهرة أنيق باللون الأحمر، جديد لم يستخدم. مثالي للمناسبات الخاصة.",
			Price:       350,
			Likes:       152,
			Comments: []*model.Comment{
				{ID: 1, User: users[1].Clone(), Text: "قطعة جميلة جداً!", Timestamp: "منذ 5 دقائق"},
				{ID: 2, User: users[2].Clone(), Text: "كم السعر؟", Timestamp: "منذ 10 دقائق"},
			},
			Timestamp: "منذ 2 ساعة",
			Brand:     "مصمم محلي",
			Category:  "فساتين",
		},
		{
			ID:          2,
			User:        users[1].Clone(),
			ImageURL:    "https://picsum.photos/id/180/600/800",
			Description: "تنسيق كاجوال ليوم عمل. سترة من زارا وبنطلون من ماسيمو دوتي.",
			Likes:       98,
			Comments: []*model.Comment{
				{ID: 3, User: users[0].Clone(), Text: "أنيق!", Timestamp: "منذ ساعة"},
			},
			Timestamp: "منذ 5 ساعة",
			Brand:     "Zara",
			Category:  "ملابس رجالية",
		},
		{
			ID:          3,
			User:        users[0].Clone(),
			ImageURL:    "https://picsum.photos/id/327/600/800",
			Description: "حقيبة يد من الجلد الطبيعي باللون البيج. استعمال خفيف جداً، حالتها ممتازة.",
			Price:       450,
			Likes:       230,
			Comments:    []*model.Comment{},
			Timestamp:   "منذ يوم",
			Brand:       "Michael Kors",
			Category:    "حقائب",
		},
	}
}

// Conversations はフィクスチャの会話を生成して返す。
func Conversations(users []*model.User) []*model.Conversation {
	return []*model.Conversation{
		{
			ID:   1,
			User: users[2].Clone(),
			Messages: []*model.Message{
				{ID: 1, SenderID: 3, Text: "مرحبا، هل الفستان الأحمر مازال متوفر؟", Timestamp: "10:30 ص"},
				{ID: 2, SenderID: 1, Text: "أهلاً بك، نعم مازال متوفر.", Timestamp: "10:32 ص"},
			},
		},
	}
}

// Load はフィクスチャを各リポジトリへ投入する。
// 投稿リポジトリは作成時に先頭挿入するため、
// フィード順を保つよう投稿は逆順で投入する。
func Load(
	ctx context.Context,
	users repository.UserRepository,
	posts repository.PostRepository,
	conversations repository.ConversationRepository,
) error {
	seedUsers := Users()
	for _, u := range seedUsers {
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("シードユーザーの投入に失敗しました: %w", err)
		}
	}

	seedPosts := Posts(seedUsers)
	for i := len(seedPosts) - 1; i >= 0; i-- {
		if err := posts.Create(ctx, seedPosts[i]); err != nil {
			return fmt.Errorf("シード投稿の投入に失敗しました: %w", err)
		}
	}

	for _, c := range Conversations(seedUsers) {
		if err := conversations.Create(ctx, c); err != nil {
			return fmt.Errorf("シード会話の投入に失敗しました: %w", err)
		}
	}

	slog.Info("シードデータを投入しました",
		slog.Int("users", len(seedUsers)),
		slog.Int("posts", len(seedPosts)),
	)
	return nil
}
