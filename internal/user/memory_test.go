package user

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestMemoryStoreCreateAndLookup(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	u := &User{ID: "1", Email: "a@example.com", Name: "A", PasswordHash: "h"}
	if err := s.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.ByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if got.ID != "1" || got.Name != "A" {
		t.Errorf("got %+v", got)
	}
}

func TestMemoryStoreDuplicate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	u := &User{ID: "1", Email: "dup@example.com"}
	if err := s.Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	if err := s.Create(ctx, u); !errors.Is(err, ErrExists) {
		t.Errorf("second Create = %v; want ErrExists", err)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.ByEmail(context.Background(), "missing@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ByEmail = %v; want ErrNotFound", err)
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_ = s.Create(ctx, &User{ID: "1", Email: "c@example.com"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.ByEmail(ctx, "c@example.com")
			_ = s.Create(ctx, &User{ID: "1", Email: "c@example.com"})
		}()
	}
	wg.Wait()
}
