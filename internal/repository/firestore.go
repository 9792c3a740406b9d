package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shutterfolio/backend/internal/model"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreDB is the hosted document store backend. Documents live in the
// top-level collections named by model.Collection.
type FirestoreDB struct {
	client *firestore.Client
}

// OpenFirestore connects to the project's default database. credentialsFile
// may be empty to use application default credentials.
func OpenFirestore(ctx context.Context, projectID, credentialsFile string) (*FirestoreDB, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: new client: %w", err)
	}
	return &FirestoreDB{client: client}, nil
}

// Ping reads a single document reference to check connectivity.
func (f *FirestoreDB) Ping(ctx context.Context) error {
	_, err := f.client.Collection(model.CollectionPortfolio.String()).Limit(1).Documents(ctx).GetAll()
	return err
}

func (f *FirestoreDB) Close() error {
	return f.client.Close()
}

func (f *FirestoreDB) Portfolio() *FirestorePortfolioRepository {
	return &FirestorePortfolioRepository{col: f.client.Collection(model.CollectionPortfolio.String())}
}

func (f *FirestoreDB) Contacts() *FirestoreContactRepository {
	return &FirestoreContactRepository{col: f.client.Collection(model.CollectionContacts.String())}
}

func (f *FirestoreDB) Reviews() *FirestoreReviewRepository {
	return &FirestoreReviewRepository{col: f.client.Collection(model.CollectionReviews.String())}
}

// deleteDoc deletes id, reporting ErrNotFound when the document is absent.
func deleteDoc(ctx context.Context, col *firestore.CollectionRef, id string) error {
	_, err := col.Doc(id).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

func intField(data map[string]any, key string) int {
	switch v := data[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// timestampField normalises createdAt, which older documents stored as a
// plain string instead of a native timestamp.
func timestampField(data map[string]any, key string) model.Timestamp {
	switch v := data[key].(type) {
	case time.Time:
		return model.NativeTimestamp(v)
	case string:
		return model.ISOTimestamp(v)
	}
	return model.Timestamp{}
}

// FirestorePortfolioRepository implements PortfolioRepository on Firestore.
type FirestorePortfolioRepository struct {
	col *firestore.CollectionRef
}

var _ PortfolioRepository = (*FirestorePortfolioRepository)(nil)

func (r *FirestorePortfolioRepository) List(ctx context.Context) ([]*model.PortfolioItem, error) {
	docs, err := r.col.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return portfolioFromDocs(docs), nil
}

func (r *FirestorePortfolioRepository) ListLimited(ctx context.Context, n int) ([]*model.PortfolioItem, error) {
	docs, err := r.col.Limit(n).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return portfolioFromDocs(docs), nil
}

func portfolioFromDocs(docs []*firestore.DocumentSnapshot) []*model.PortfolioItem {
	items := make([]*model.PortfolioItem, 0, len(docs))
	for _, d := range docs {
		data := d.Data()
		items = append(items, &model.PortfolioItem{
			ID:          d.Ref.ID,
			Title:       stringField(data, "title"),
			Category:    model.Category(stringField(data, "category")),
			Image:       stringField(data, "image"),
			Link:        stringField(data, "link"),
			Description: stringField(data, "description"),
		})
	}
	return items
}

func (r *FirestorePortfolioRepository) Create(ctx context.Context, item *model.PortfolioItem) error {
	ref, _, err := r.col.Add(ctx, map[string]any{
		"title":       item.Title,
		"category":    item.Category.String(),
		"image":       item.Image,
		"link":        item.Link,
		"description": item.Description,
	})
	if err != nil {
		return err
	}
	item.ID = ref.ID
	return nil
}

func (r *FirestorePortfolioRepository) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, r.col, id)
}

// FirestoreContactRepository implements ContactRepository on Firestore.
type FirestoreContactRepository struct {
	col *firestore.CollectionRef
}

var _ ContactRepository = (*FirestoreContactRepository)(nil)

func (r *FirestoreContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	created := msg.CreatedAt
	if created.IsZero() {
		created = model.Now()
	}
	t, _ := created.Time()
	data := map[string]any{
		"name":      msg.Name,
		"email":     msg.Email,
		"message":   msg.Message,
		"createdAt": t,
	}
	if msg.Phone != "" {
		data["phone"] = msg.Phone
	}
	if msg.Date != "" {
		data["date"] = msg.Date
	}
	ref, _, err := r.col.Add(ctx, data)
	if err != nil {
		return err
	}
	msg.ID = ref.ID
	msg.CreatedAt = model.NativeTimestamp(t)
	return nil
}

// List orders by createdAt descending. Firestore orders values of different
// types by type first, so legacy string timestamps are re-sorted in memory.
func (r *FirestoreContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	// Firestore orders by value type before value, so legacy string
	// createdAt rows and native timestamps interleave wrongly across
	// server-side pages. Read the whole collection and page after sorting.
	docs, err := r.col.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	messages := make([]*model.ContactMessage, 0, len(docs))
	for _, d := range docs {
		data := d.Data()
		messages = append(messages, &model.ContactMessage{
			ID:        d.Ref.ID,
			Name:      stringField(data, "name"),
			Email:     stringField(data, "email"),
			Phone:     stringField(data, "phone"),
			Date:      stringField(data, "date"),
			Message:   stringField(data, "message"),
			CreatedAt: timestampField(data, "createdAt"),
		})
	}
	sortNewestFirst(messages)
	return pageMessages(messages, opts), nil
}

func sortNewestFirst(messages []*model.ContactMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[j].CreatedAt.Before(messages[i].CreatedAt)
	})
}

func pageMessages(messages []*model.ContactMessage, opts model.ContactListOptions) []*model.ContactMessage {
	if opts.Offset > 0 {
		if opts.Offset >= len(messages) {
			return []*model.ContactMessage{}
		}
		messages = messages[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(messages) {
		messages = messages[:opts.Limit]
	}
	return messages
}

func (r *FirestoreContactRepository) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, r.col, id)
}

// FirestoreReviewRepository implements ReviewRepository on Firestore.
type FirestoreReviewRepository struct {
	col *firestore.CollectionRef
}

var _ ReviewRepository = (*FirestoreReviewRepository)(nil)

func (r *FirestoreReviewRepository) List(ctx context.Context) ([]*model.Review, error) {
	docs, err := r.col.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	reviews := make([]*model.Review, 0, len(docs))
	for _, d := range docs {
		data := d.Data()
		reviews = append(reviews, &model.Review{
			ID:     d.Ref.ID,
			Name:   stringField(data, "name"),
			Rating: intField(data, "rating"),
			Date:   stringField(data, "date"),
			Text:   stringField(data, "text"),
		})
	}
	return reviews, nil
}

func (r *FirestoreReviewRepository) Create(ctx context.Context, review *model.Review) error {
	ref, _, err := r.col.Add(ctx, map[string]any{
		"name":   review.Name,
		"rating": review.Rating,
		"date":   review.Date,
		"text":   review.Text,
	})
	if err != nil {
		return err
	}
	review.ID = ref.ID
	return nil
}

func (r *FirestoreReviewRepository) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, r.col, id)
}
