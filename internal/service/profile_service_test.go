package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/cachestore"
)

func newProfileService(repo *fakeProfileRepo) (IProfileService, *memCache) {
	mem := newMemCache()
	profileCache := cachestore.New[entity.UserProfile](mem, nopLogger{}, "profile")
	referenceCache := cachestore.New[[]constant.AllergenInfo](mem, nopLogger{}, "allergen_list")
	return NewProfileService(repo, profileCache, referenceCache, nil, nopLogger{}), mem
}

func TestGetProfileServesSecondReadFromCache(t *testing.T) {
	loads := 0
	repo := &fakeProfileRepo{
		findFn: func(_ context.Context, userID string) (*entity.UserProfile, error) {
			loads++
			return &entity.UserProfile{
				UserId:       userID,
				Allergens:    []string{"peanuts"},
				DietaryPrefs: []string{"vegan"},
			}, nil
		},
	}
	svc, _ := newProfileService(repo)
	ctx := context.Background()

	first, err := svc.GetProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	second, err := svc.GetProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}

	if loads != 1 {
		t.Errorf("store reads = %d, want 1", loads)
	}
	if !reflect.DeepEqual(first.Allergens, second.Allergens) {
		t.Errorf("reads disagree: %v vs %v", first.Allergens, second.Allergens)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _ := newProfileService(&fakeProfileRepo{})

	_, err := svc.GetProfile(context.Background(), "user-1")
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Errorf("code = %v, want CodeNotFound", apperr.CodeOf(err))
	}
	if got := apperr.PublicMessageOf(err); got != "Profile for user user-1 not found" {
		t.Errorf("public message = %q", got)
	}
}

func TestGetProfileStoreFailure(t *testing.T) {
	repo := &fakeProfileRepo{
		findFn: func(context.Context, string) (*entity.UserProfile, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc, _ := newProfileService(repo)

	_, err := svc.GetProfile(context.Background(), "user-1")
	if !apperr.IsCode(err, apperr.CodeUpstreamUnavailable) {
		t.Errorf("code = %v, want CodeUpstreamUnavailable", apperr.CodeOf(err))
	}
	if got := apperr.PublicMessageOf(err); got != "Profile store is unavailable" {
		t.Errorf("public message = %q", got)
	}
}

func TestUpsertProfileRejectsEmptyPatch(t *testing.T) {
	repo := &fakeProfileRepo{
		upsertFn: func(context.Context, string, *dto.UpdateProfileRequest) (*entity.UserProfile, error) {
			t.Error("upsert ran for an empty patch")
			return nil, nil
		},
	}
	svc, _ := newProfileService(repo)

	_, err := svc.UpsertProfile(context.Background(), "user-1", &dto.UpdateProfileRequest{})
	if !apperr.IsCode(err, apperr.CodeBadRequest) {
		t.Errorf("code = %v, want CodeBadRequest", apperr.CodeOf(err))
	}
	if got := apperr.PublicMessageOf(err); got != "No fields provided for update" {
		t.Errorf("public message = %q", got)
	}
}

func TestUpsertProfileInvalidatesCachedProfile(t *testing.T) {
	stored := &entity.UserProfile{UserId: "user-1", Allergens: []string{"milk"}}
	repo := &fakeProfileRepo{
		upsertFn: func(context.Context, string, *dto.UpdateProfileRequest) (*entity.UserProfile, error) {
			return stored, nil
		},
	}
	svc, mem := newProfileService(repo)
	ctx := context.Background()

	stale := &entity.UserProfile{UserId: "user-1"}
	profileCache := cachestore.New[entity.UserProfile](mem, nopLogger{}, "profile")
	profileCache.Put(ctx, constant.ProfileCacheKey("user-1"), stale, time.Minute)

	updated, err := svc.UpsertProfile(ctx, "user-1", &dto.UpdateProfileRequest{
		Allergens: []string{"milk"},
	})
	if err != nil {
		t.Fatalf("UpsertProfile error: %v", err)
	}
	if updated != stored {
		t.Errorf("updated = %+v, want stored document", updated)
	}

	if _, ok := mem.data[constant.ProfileCacheKey("user-1")]; ok {
		t.Error("stale cached profile survived the upsert")
	}
}

func TestUpsertProfileDuplicateIdentifier(t *testing.T) {
	repo := &fakeProfileRepo{
		upsertFn: func(context.Context, string, *dto.UpdateProfileRequest) (*entity.UserProfile, error) {
			return nil, duplicateKeyErr()
		},
	}
	svc, _ := newProfileService(repo)

	_, err := svc.UpsertProfile(context.Background(), "user-1", &dto.UpdateProfileRequest{
		Email: strPtr("someone@example.com"),
	})
	if !apperr.IsCode(err, apperr.CodeBadRequest) {
		t.Errorf("code = %v, want CodeBadRequest", apperr.CodeOf(err))
	}
	if got := apperr.PublicMessageOf(err); got != "Update failed due to a conflicting unique identifier" {
		t.Errorf("public message = %q", got)
	}
}

func TestUpsertProfileMissingResultDocument(t *testing.T) {
	svc, _ := newProfileService(&fakeProfileRepo{})

	_, err := svc.UpsertProfile(context.Background(), "user-1", &dto.UpdateProfileRequest{
		Username: strPtr("someone"),
	})
	if !apperr.IsCode(err, apperr.CodeInternal) {
		t.Errorf("code = %v, want CodeInternal", apperr.CodeOf(err))
	}
	if got := apperr.PublicMessageOf(err); got != "Profile update failed unexpectedly after upsert operation" {
		t.Errorf("public message = %q", got)
	}
}

func TestListAllergensCachesReferenceList(t *testing.T) {
	svc, mem := newProfileService(&fakeProfileRepo{})
	ctx := context.Background()

	first, err := svc.ListAllergens(ctx)
	if err != nil {
		t.Fatalf("ListAllergens error: %v", err)
	}
	if len(first) != len(constant.CommonAllergens) {
		t.Errorf("list length = %d, want %d", len(first), len(constant.CommonAllergens))
	}

	if _, ok := mem.data[constant.AllergenListCacheKey]; !ok {
		t.Error("reference list not written back to cache")
	}

	second, err := svc.ListAllergens(ctx)
	if err != nil {
		t.Fatalf("ListAllergens error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached reference list differs from the first read")
	}
}
