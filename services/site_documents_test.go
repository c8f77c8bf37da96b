package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/passa-a-bola/platform/repositories"
	"github.com/passa-a-bola/platform/store"
)

func TestEncontroMergeUpdate(t *testing.T) {
	repo := repositories.NewSiteDocumentRepository(store.NewMemoryStore(), store.CollectionEncontro, []byte(`{}`))
	svc := NewEncontroService(repo)
	ctx := context.Background()

	if _, err := svc.MergeUpdate(ctx, json.RawMessage(`{"local":"Parque Villa-Lobos","horario":"10h"}`)); err != nil {
		t.Fatalf("MergeUpdate() error = %v", err)
	}
	// A second update touches one key; the others survive.
	if _, err := svc.MergeUpdate(ctx, json.RawMessage(`{"horario":"14h"}`)); err != nil {
		t.Fatalf("MergeUpdate() error = %v", err)
	}

	body, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	var doc map[string]string
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("stored document is not an object: %v", err)
	}
	if doc["local"] != "Parque Villa-Lobos" {
		t.Errorf("local = %q, want it preserved across a partial update", doc["local"])
	}
	if doc["horario"] != "14h" {
		t.Errorf("horario = %q, want %q", doc["horario"], "14h")
	}
}

func TestEncontroMergeUpdateRejectsNonObject(t *testing.T) {
	repo := repositories.NewSiteDocumentRepository(store.NewMemoryStore(), store.CollectionEncontro, []byte(`{}`))
	svc := NewEncontroService(repo)

	for _, body := range []string{`[1,2]`, `"texto"`, `not json`} {
		if _, err := svc.MergeUpdate(context.Background(), json.RawMessage(body)); !errors.Is(err, ErrValidationFailed) {
			t.Errorf("MergeUpdate(%s) error = %v, want ErrValidationFailed", body, err)
		}
	}
}

func TestEncontroGetBeforeFirstWrite(t *testing.T) {
	repo := repositories.NewSiteDocumentRepository(store.NewMemoryStore(), store.CollectionEncontro, []byte(`{}`))
	svc := NewEncontroService(repo)

	body, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(body) != `{}` {
		t.Errorf("Get() = %s, want empty object", body)
	}
}

func TestPeneirasReplace(t *testing.T) {
	repo := repositories.NewSiteDocumentRepository(store.NewMemoryStore(), store.CollectionPeneiras, []byte(`[]`))
	svc := NewPeneirasService(repo)
	ctx := context.Background()

	initial, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if string(initial) != `[]` {
		t.Errorf("List() before first write = %s, want empty array", initial)
	}

	listing := json.RawMessage(`[{"clube":"Corinthians","data":"2026-09-12"}]`)
	if err := svc.Replace(ctx, listing); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	stored, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if string(stored) != string(listing) {
		t.Errorf("List() = %s, want %s", stored, listing)
	}

	for _, body := range []string{`{"clube":"x"}`, `not json`} {
		if err := svc.Replace(ctx, json.RawMessage(body)); !errors.Is(err, ErrValidationFailed) {
			t.Errorf("Replace(%s) error = %v, want ErrValidationFailed", body, err)
		}
	}
}

func TestCopaReplaceRejectsInvalidJSON(t *testing.T) {
	repo := repositories.NewSiteDocumentRepository(store.NewMemoryStore(), store.CollectionCopa, []byte(`{}`))
	svc := NewCopaService(repo)

	if err := svc.Replace(context.Background(), json.RawMessage(`{"fase":`)); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Replace() error = %v, want ErrValidationFailed", err)
	}
	if err := svc.Replace(context.Background(), json.RawMessage(`{"fase":"oitavas"}`)); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
}
