package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/regmon-lab/regmon/pkg/domain/interfaces"
	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/repository/firestore"
	"github.com/regmon-lab/regmon/pkg/repository/memory"
)

func runComplaintRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	received := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Create creates complaint with auto-increment ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created1, err := repo.Complaint().Create(ctx, &model.Complaint{
			Reference:        "CMP-001",
			Subject:          "Unexpected account fee",
			ComplainantName:  "Alex Doe",
			ComplainantEmail: "alex@example.com",
			ReceivedDate:     received,
		})
		if err != nil {
			t.Fatalf("failed to create complaint: %v", err)
		}

		if created1.ID != 1 {
			t.Errorf("expected ID=1, got %d", created1.ID)
		}
		if created1.Reference != "CMP-001" {
			t.Errorf("expected reference=CMP-001, got %s", created1.Reference)
		}
		if created1.CreatedAt.IsZero() {
			t.Error("expected non-zero CreatedAt")
		}

		created2, err := repo.Complaint().Create(ctx, &model.Complaint{
			Reference:    "CMP-002",
			Subject:      "Delayed transfer",
			ReceivedDate: received,
		})
		if err != nil {
			t.Fatalf("failed to create second complaint: %v", err)
		}
		if created2.ID != 2 {
			t.Errorf("expected ID=2, got %d", created2.ID)
		}
	})

	t.Run("Get retrieves complaint with optional dates", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		deadline := received.Add(40 * 24 * time.Hour)
		created, err := repo.Complaint().Create(ctx, &model.Complaint{
			Reference:          "CMP-010",
			Subject:            "Mis-sold product",
			ReceivedDate:       received,
			ResolutionDeadline: &deadline,
			FourWeekLetterSent: true,
		})
		if err != nil {
			t.Fatalf("failed to create complaint: %v", err)
		}

		retrieved, err := repo.Complaint().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get complaint: %v", err)
		}

		if retrieved.ResolutionDeadline == nil || !retrieved.ResolutionDeadline.Equal(deadline) {
			t.Errorf("expected resolutionDeadline=%v, got %v", deadline, retrieved.ResolutionDeadline)
		}
		if retrieved.ResolvedDate != nil {
			t.Errorf("expected nil resolvedDate, got %v", retrieved.ResolvedDate)
		}
		if !retrieved.FourWeekLetterSent {
			t.Error("expected fourWeekLetterSent=true")
		}
	})

	t.Run("Get returns error for non-existent complaint", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Complaint().Get(ctx, 99999)
		if err == nil {
			t.Error("expected error for non-existent complaint")
		}
		if !errors.Is(err, memory.ErrNotFound) && !errors.Is(err, firestore.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListOpen excludes resolved complaints", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		open, err := repo.Complaint().Create(ctx, &model.Complaint{
			Reference:    "CMP-020",
			Subject:      "Open complaint",
			ReceivedDate: received,
		})
		if err != nil {
			t.Fatalf("failed to create open complaint: %v", err)
		}

		resolvedDate := received.Add(10 * 24 * time.Hour)
		if _, err := repo.Complaint().Create(ctx, &model.Complaint{
			Reference:    "CMP-021",
			Subject:      "Resolved complaint",
			ReceivedDate: received,
			ResolvedDate: &resolvedDate,
		}); err != nil {
			t.Fatalf("failed to create resolved complaint: %v", err)
		}

		all, err := repo.Complaint().List(ctx)
		if err != nil {
			t.Fatalf("failed to list complaints: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 complaints, got %d", len(all))
		}

		openList, err := repo.Complaint().ListOpen(ctx)
		if err != nil {
			t.Fatalf("failed to list open complaints: %v", err)
		}
		if len(openList) != 1 {
			t.Fatalf("expected 1 open complaint, got %d", len(openList))
		}
		if openList[0].ID != open.ID {
			t.Errorf("expected open complaint ID=%d, got %d", open.ID, openList[0].ID)
		}
	})

	t.Run("Update records resolution", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Complaint().Create(ctx, &model.Complaint{
			Reference:    "CMP-030",
			Subject:      "Pending complaint",
			ReceivedDate: received,
		})
		if err != nil {
			t.Fatalf("failed to create complaint: %v", err)
		}

		resolvedDate := received.Add(30 * 24 * time.Hour)
		created.ResolvedDate = &resolvedDate
		created.FinalResponseSent = true

		updated, err := repo.Complaint().Update(ctx, created)
		if err != nil {
			t.Fatalf("failed to update complaint: %v", err)
		}

		if updated.ResolvedDate == nil || !updated.ResolvedDate.Equal(resolvedDate) {
			t.Errorf("expected resolvedDate=%v, got %v", resolvedDate, updated.ResolvedDate)
		}
		if !updated.FinalResponseSent {
			t.Error("expected finalResponseSent=true")
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("expected createdAt preserved, got %v", updated.CreatedAt)
		}
	})

	t.Run("Update returns error for non-existent complaint", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Complaint().Update(ctx, &model.Complaint{ID: 12345, Subject: "Ghost"})
		if err == nil {
			t.Error("expected error for non-existent complaint")
		}
	})

	t.Run("Delete removes complaint", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Complaint().Create(ctx, &model.Complaint{
			Reference:    "CMP-040",
			Subject:      "Duplicate entry",
			ReceivedDate: received,
		})
		if err != nil {
			t.Fatalf("failed to create complaint: %v", err)
		}

		if err := repo.Complaint().Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete complaint: %v", err)
		}

		if _, err := repo.Complaint().Get(ctx, created.ID); err == nil {
			t.Error("expected error after deletion")
		}
	})
}

func TestMemoryComplaintRepository(t *testing.T) {
	runComplaintRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreComplaintRepository(t *testing.T) {
	runComplaintRepositoryTest(t, newFirestoreRepository)
}
