package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"yatra/internal/models/db_models"
)

var errStorage = errors.New("connection refused")

type fakeReviewRepo struct {
	reviews []db_models.Review
	err     error
	clock   int64
}

func (f *fakeReviewRepo) CreateReview(ctx context.Context, review *db_models.Review) error {
	if f.err != nil {
		return f.err
	}
	f.clock++
	review.ID = uuid.New()
	review.CreatedAt = f.clock
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) ListReviews(ctx context.Context, page, pageSize int) ([]db_models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	sorted := append([]db_models.Review(nil), f.reviews...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt > sorted[j].CreatedAt })
	return paginate(sorted, page, pageSize), nil
}

func (f *fakeReviewRepo) DeleteReview(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i, r := range f.reviews {
		if r.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeDestinationRepo struct {
	byName      map[string]db_models.Destination
	order       []string
	vectorCalls int
	listCalls   int
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{byName: map[string]db_models.Destination{}}
}

func (f *fakeDestinationRepo) GetListOfDestinations(ctx context.Context, page int, pageSize int) ([]db_models.Destination, error) {
	f.listCalls++
	all := make([]db_models.Destination, 0, len(f.order))
	for _, name := range f.order {
		all = append(all, f.byName[name])
	}
	return paginate(all, page, pageSize), nil
}

func (f *fakeDestinationRepo) GetListByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error) {
	f.vectorCalls++
	all := make([]db_models.Destination, 0, len(f.order))
	for _, name := range f.order {
		all = append(all, f.byName[name])
	}
	query := vector.Slice()
	sort.SliceStable(all, func(i, j int) bool {
		return dot(query, all[i].Embedding.Slice()) > dot(query, all[j].Embedding.Slice())
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeDestinationRepo) UpsertByName(ctx context.Context, destination *db_models.Destination) error {
	existing, ok := f.byName[destination.Name]
	if ok {
		destination.ID = existing.ID
	} else {
		destination.ID = uuid.New()
		f.order = append(f.order, destination.Name)
	}
	f.byName[destination.Name] = *destination
	return nil
}

type fakeAccountRepo struct {
	byEmail map[string]db_models.Account
	err     error
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	account.ID = uuid.New()
	f.byEmail[account.Email] = *account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, a := range f.byEmail {
		if a.ID.String() == id {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	if a, ok := f.byEmail[email]; ok {
		return &a, nil
	}
	return nil, nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		if i < len(b) {
			sum += a[i] * b[i]
		}
	}
	return sum
}
