package city

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/domain"
)

const testAssetBase = "https://cdn.example.com"

// setupTestDB creates an in-memory SQLite database with the cities table.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.City{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// recordingRemover records which stored files were removed.
type recordingRemover struct {
	removed []string
}

func (r *recordingRemover) Remove(name string) { r.removed = append(r.removed, name) }

func newTestService(t *testing.T) (Service, *recordingRemover) {
	t.Helper()
	remover := &recordingRemover{}
	return NewService(NewCityRepository(setupTestDB(t)), remover, testAssetBase), remover
}

func TestCreateCity_DerivedSlug(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.CreateCity(context.Background(), CreateCityRequest{
		Name:  "  Dubai Marina  ",
		State: " Dubai ",
	}, "skyline.jpg")
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}
	if record.ID == 0 {
		t.Error("expected city ID to be set")
	}
	if record.Name != "Dubai Marina" || record.State != "Dubai" {
		t.Errorf("whitespace not trimmed: %+v", record)
	}
	if record.Slug != "dubai-marina" {
		t.Errorf("Slug = %q, want %q", record.Slug, "dubai-marina")
	}
	if record.ImageURL != testAssetBase+"/skyline.jpg" {
		t.Errorf("ImageURL = %q, want derived URL", record.ImageURL)
	}
}

func TestCreateCity_ExplicitSlugConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Dubai", Slug: "dubai"}, ""); err != nil {
		t.Fatalf("CreateCity: %v", err)
	}

	_, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Dubai Two", Slug: "dubai"}, "")
	if !domain.IsAlreadyExists(err) {
		t.Fatalf("expected conflict for explicit duplicate slug, got %v", err)
	}
}

func TestCreateCity_DerivedSlugCollision_Disambiguated(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Dubai"}, "")
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}

	second, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Dubai"}, "")
	if err != nil {
		t.Fatalf("CreateCity with colliding derived slug: %v", err)
	}
	if second.Slug == first.Slug {
		t.Fatalf("derived slug collision not disambiguated: %q", second.Slug)
	}
	if !strings.HasPrefix(second.Slug, "dubai-") {
		t.Errorf("Slug = %q, want prefix %q", second.Slug, "dubai-")
	}
}

func TestCreateCity_NameWithoutAlphanumerics(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateCity(context.Background(), CreateCityRequest{Name: "!!!"}, "")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetCityBySlug(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Abu Dhabi"}, "corniche.jpg")
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}

	record, err := svc.GetCityBySlug(ctx, "abu-dhabi")
	if err != nil {
		t.Fatalf("GetCityBySlug: %v", err)
	}
	if record.ID != created.ID {
		t.Errorf("got city %d, want %d", record.ID, created.ID)
	}
	if record.ImageURL != testAssetBase+"/corniche.jpg" {
		t.Errorf("ImageURL = %q, want derived URL", record.ImageURL)
	}

	_, err = svc.GetCityBySlug(ctx, "nowhere")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateCity_PartialFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Sharjah", State: "Sharjah"}, "")
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}

	state := "Northern Emirates"
	updated, err := svc.UpdateCity(ctx, created.ID, UpdateCityRequest{State: &state}, "")
	if err != nil {
		t.Fatalf("UpdateCity: %v", err)
	}
	if updated.State != "Northern Emirates" {
		t.Errorf("State = %q, want %q", updated.State, "Northern Emirates")
	}
	if updated.Name != "Sharjah" || updated.Slug != "sharjah" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateCity_SlugNormalized(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Ajman"}, "")
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}

	slug := "  New Ajman  "
	updated, err := svc.UpdateCity(ctx, created.ID, UpdateCityRequest{Slug: &slug}, "")
	if err != nil {
		t.Fatalf("UpdateCity: %v", err)
	}
	if updated.Slug != "new-ajman" {
		t.Errorf("Slug = %q, want %q", updated.Slug, "new-ajman")
	}

	empty := "!!!"
	if _, err := svc.UpdateCity(ctx, created.ID, UpdateCityRequest{Slug: &empty}, ""); !domain.IsValidation(err) {
		t.Errorf("expected validation error for junk slug, got %v", err)
	}
}

func TestUpdateCity_ReplacingImageRemovesOldFile(t *testing.T) {
	svc, remover := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Fujairah"}, "old.jpg")
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}

	updated, err := svc.UpdateCity(ctx, created.ID, UpdateCityRequest{}, "new.jpg")
	if err != nil {
		t.Fatalf("UpdateCity: %v", err)
	}
	if updated.Image != "new.jpg" {
		t.Errorf("Image = %q, want %q", updated.Image, "new.jpg")
	}
	if len(remover.removed) != 1 || remover.removed[0] != "old.jpg" {
		t.Errorf("removed = %v, want [old.jpg]", remover.removed)
	}
}

func TestUpdateCity_NoFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Al Ain"}, "")
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}

	if _, err := svc.UpdateCity(ctx, created.ID, UpdateCityRequest{}, ""); !domain.IsValidation(err) {
		t.Errorf("expected validation error for empty update, got %v", err)
	}
}

func TestDeleteRestoreCityLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Ras Al Khaimah"}, "")
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}

	if err := svc.DeleteCity(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCity: %v", err)
	}
	record, err := svc.GetCity(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCity after soft delete: %v", err)
	}
	if record.Status != domain.StatusDeleted {
		t.Errorf("Status = %d, want %d", record.Status, domain.StatusDeleted)
	}

	if err := svc.RestoreCity(ctx, created.ID); err != nil {
		t.Fatalf("RestoreCity: %v", err)
	}
	if err := svc.RestoreCity(ctx, created.ID); !domain.IsNotFound(err) {
		t.Errorf("restoring an active city should report not found, got %v", err)
	}

	if err := svc.DeleteCityPermanently(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCityPermanently: %v", err)
	}
	if _, err := svc.GetCity(ctx, created.ID); !domain.IsNotFound(err) {
		t.Errorf("expected not found after permanent delete, got %v", err)
	}
}

func TestBulkCityOperations(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var ids []uint
	for _, name := range []string{"One City", "Two City", "Three City"} {
		record, err := svc.CreateCity(ctx, CreateCityRequest{Name: name}, "")
		if err != nil {
			t.Fatalf("CreateCity: %v", err)
		}
		ids = append(ids, record.ID)
	}

	affected, err := svc.BulkDelete(ctx, ids[:2])
	if err != nil {
		t.Fatalf("BulkDelete: %v", err)
	}
	if affected != 2 {
		t.Errorf("BulkDelete affected = %d, want 2", affected)
	}

	affected, err = svc.BulkStatus(ctx, ids, domain.StatusActive)
	if err != nil {
		t.Fatalf("BulkStatus: %v", err)
	}
	if affected != 3 {
		t.Errorf("BulkStatus affected = %d, want 3", affected)
	}

	affected, err = svc.BulkDeletePermanently(ctx, ids)
	if err != nil {
		t.Fatalf("BulkDeletePermanently: %v", err)
	}
	if affected != 3 {
		t.Errorf("BulkDeletePermanently affected = %d, want 3", affected)
	}
}

func TestCityStats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Alpha Town", "Beta Town", "Gamma Town"} {
		if _, err := svc.CreateCity(ctx, CreateCityRequest{Name: name, State: "North"}, ""); err != nil {
			t.Fatalf("CreateCity: %v", err)
		}
	}
	last, err := svc.CreateCity(ctx, CreateCityRequest{Name: "Delta Town", State: "South"}, "")
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}
	if err := svc.DeleteCity(ctx, last.ID); err != nil {
		t.Fatalf("DeleteCity: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 4 || stats.Active != 3 || stats.Deleted != 1 {
		t.Errorf("Stats = total %d active %d deleted %d, want 4/3/1", stats.Total, stats.Active, stats.Deleted)
	}
}
