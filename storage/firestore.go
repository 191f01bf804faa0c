package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/resumelens/backend/config"
	"github.com/resumelens/backend/models"
)

const (
	usersCollection    = "users"
	analysesCollection = "analyses"
)

// ErrUserExists is returned when registering an email that is already taken
var ErrUserExists = errors.New("user with this email already exists")

// ErrUserNotFound is returned when no user matches the given email
var ErrUserNotFound = errors.New("user not found")

// ErrCacheMiss is returned when no fresh cached analysis exists
var ErrCacheMiss = errors.New("analysis not cached")

// FirestoreClient wraps Firestore operations: user accounts and the analysis
// result cache
type FirestoreClient struct {
	client   *firestore.Client
	cacheTTL time.Duration
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{
		client:   client,
		cacheTTL: time.Duration(cfg.CacheTTLHours) * time.Hour,
	}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// CreateUser creates a new user in Firestore
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	// Use email as document ID for uniqueness
	docRef := f.client.Collection(usersCollection).Doc(user.Email)

	_, err := docRef.Get(ctx)
	if err == nil {
		return ErrUserExists
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	if _, err := docRef.Set(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := f.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser merges the given fields into the user document
func (f *FirestoreClient) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	docRef := f.client.Collection(usersCollection).Doc(email)
	if _, err := docRef.Set(ctx, updates, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateUserResumeURL updates the user's stored resume URL
func (f *FirestoreClient) UpdateUserResumeURL(ctx context.Context, email, resumeURL string) error {
	return f.UpdateUser(ctx, email, map[string]interface{}{
		"resumeUrl": resumeURL,
	})
}

// DeleteUser deletes a user
func (f *FirestoreClient) DeleteUser(ctx context.Context, email string) error {
	if _, err := f.client.Collection(usersCollection).Doc(email).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// cachedAnalysis is the Firestore document shape for cached analysis results
type cachedAnalysis struct {
	Response  models.AnalyzeResponse `firestore:"response"`
	CreatedAt time.Time              `firestore:"createdAt"`
}

// AnalysisCacheKey derives a stable cache key from the analysis inputs
func AnalysisCacheKey(resumeText, jobDescription string) string {
	h := sha256.New()
	h.Write([]byte(resumeText))
	h.Write([]byte{0})
	h.Write([]byte(jobDescription))
	return hex.EncodeToString(h.Sum(nil))
}

// GetCachedAnalysis returns a cached analysis response, or ErrCacheMiss when
// none exists or the entry has outlived the TTL
func (f *FirestoreClient) GetCachedAnalysis(ctx context.Context, key string) (*models.AnalyzeResponse, error) {
	doc, err := f.client.Collection(analysesCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached analysis: %w", err)
	}

	var cached cachedAnalysis
	if err := doc.DataTo(&cached); err != nil {
		return nil, fmt.Errorf("failed to parse cached analysis: %w", err)
	}

	if f.cacheTTL > 0 && time.Since(cached.CreatedAt) > f.cacheTTL {
		return nil, ErrCacheMiss
	}
	return &cached.Response, nil
}

// PurgeExpiredAnalyses deletes cache entries older than the TTL and returns
// how many were removed. Run at startup and periodically; Firestore has no
// built-in expiry on these documents.
func (f *FirestoreClient) PurgeExpiredAnalyses(ctx context.Context) (int, error) {
	if f.cacheTTL <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-f.cacheTTL)

	iter := f.client.Collection(analysesCollection).Where("createdAt", "<", cutoff).Documents(ctx)
	defer iter.Stop()

	purged := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return purged, fmt.Errorf("failed to iterate expired analyses: %w", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return purged, fmt.Errorf("failed to delete expired analysis: %w", err)
		}
		purged++
	}
	return purged, nil
}

// PutCachedAnalysis stores an analysis response under the given key
func (f *FirestoreClient) PutCachedAnalysis(ctx context.Context, key string, resp *models.AnalyzeResponse) error {
	doc := cachedAnalysis{
		Response:  *resp,
		CreatedAt: time.Now(),
	}
	if _, err := f.client.Collection(analysesCollection).Doc(key).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to cache analysis: %w", err)
	}
	return nil
}
