package repository

import (
	"context"
	"testing"

	"github.com/hitoshi/stylati/internal/model"
)

// TestMemoryUserRepository_Create_AssignsSequentialIDs はID採番を検証する。
func TestMemoryUserRepository_Create_AssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	u1 := &model.User{Username: "sara_fashion"}
	u2 := &model.User{Username: "ahmed_style"}
	if err := repo.Create(ctx, u1); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := repo.Create(ctx, u2); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if u1.ID != 1 || u2.ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", u1.ID, u2.ID)
	}
}

// TestMemoryUserRepository_Create_PresetID_BumpsNextID はシード投入時の採番整合を検証する。
// 既存IDを持つレコードを投入した後の採番が、そのIDを再利用しないこと。
func TestMemoryUserRepository_Create_PresetID_BumpsNextID(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &model.User{ID: 3, Username: "noor_closet"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	u := &model.User{Username: "new_user"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.ID != 4 {
		t.Errorf("next assigned ID = %d, want 4", u.ID)
	}
}

// TestMemoryUserRepository_FindByUsername_CaseInsensitive は大文字小文字を区別しない検索を検証する。
func TestMemoryUserRepository_FindByUsername_CaseInsensitive(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()
	if err := repo.Create(ctx, &model.User{Username: "sara_fashion"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	for _, name := range []string{"sara_fashion", "SARA_FASHION", "Sara_Fashion"} {
		u, err := repo.FindByUsername(ctx, name)
		if err != nil {
			t.Fatalf("FindByUsername(%q) returned error: %v", name, err)
		}
		if u == nil {
			t.Errorf("FindByUsername(%q) = nil, want user", name)
		}
	}

	u, err := repo.FindByUsername(ctx, "unknown")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if u != nil {
		t.Errorf("FindByUsername(unknown) = %+v, want nil", u)
	}
}

// TestMemoryUserRepository_ReturnsClones は取得結果がストア内部と独立であることを検証する。
func TestMemoryUserRepository_ReturnsClones(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()
	if err := repo.Create(ctx, &model.User{Username: "sara_fashion", Bio: "original"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	u, err := repo.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	u.Bio = "mutated"

	again, err := repo.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if again.Bio != "original" {
		t.Errorf("stored Bio = %q, want %q", again.Bio, "original")
	}
}

// TestMemoryUserRepository_Update は置き換え更新と不在エラーを検証する。
func TestMemoryUserRepository_Update(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()
	if err := repo.Create(ctx, &model.User{Username: "sara_fashion"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := repo.Update(ctx, &model.User{ID: 1, Username: "sara_fashion", Bio: "updated"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	u, err := repo.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if u.Bio != "updated" {
		t.Errorf("Bio = %q, want %q", u.Bio, "updated")
	}

	err = repo.Update(ctx, &model.User{ID: 99})
	if err == nil {
		t.Fatal("Update of missing user should return error")
	}
}

// TestMemoryUserRepository_List_PreservesInsertionOrder は登録順の保持を検証する。
func TestMemoryUserRepository_List_PreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()
	for _, name := range []string{"sara_fashion", "ahmed_style", "noor_closet"} {
		if err := repo.Create(ctx, &model.User{Username: name}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("len(users) = %d, want 3", len(users))
	}
	if users[0].Username != "sara_fashion" || users[2].Username != "noor_closet" {
		t.Errorf("order = [%s, %s, %s], want insertion order",
			users[0].Username, users[1].Username, users[2].Username)
	}
}
