// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureJobs(ctx, db); err != nil {
		problems = append(problems, "jobs: "+err.Error())
	}
	if err := ensureApplications(ctx, db); err != nil {
		problems = append(problems, "job_applications: "+err.Error())
	}
	if err := ensureNewsEvents(ctx, db); err != nil {
		problems = append(problems, "news_events: "+err.Error())
	}
	if err := ensureContacts(ctx, db); err != nil {
		problems = append(problems, "contact_submissions: "+err.Error())
	}
	if err := ensureVolunteers(ctx, db); err != nil {
		problems = append(problems, "volunteer_registrations: "+err.Error())
	}
	if err := ensurePages(ctx, db); err != nil {
		problems = append(problems, "pages: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Best-effort duplicate-detector (works cross-vendors)
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 { // E11000 duplicate key error index
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	// Load existing indexes once; the list is small.
	existing := map[string]existingIndex{} // sig -> index
	cur, err := coll.Indexes().List(ctx)
	if err == nil {
		defer cur.Close(ctx)
		for cur.Next(ctx) {
			var idx existingIndex
			if err := cur.Decode(&idx); err != nil {
				zap.L().Warn("failed to decode existing index",
					zap.String("collection", coll.Name()),
					zap.Error(err))
				continue
			}
			existing[keySig(idx.Key)] = idx
		}
	}

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[desiredSig]; ok {
			if sameBoolPtr(desiredUnique, ex.Unique) {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig))
				continue
			}
			// Options mismatch (e.g., upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isDuplicateKeyErr(err) && desiredUnique != nil && *desiredUnique {
				helper := ""
				if coll.Name() == "users" && strings.Contains(desiredSig, "email:1") {
					helper = " — duplicates exist on users.email. Example finder:\n" +
						`db.users.aggregate([{ $group: { _id: "$email", n: { $sum: 1 } } }, { $match: { n: { $gt: 1 } } }])`
				}
				errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)%s", coll.Name(), desiredName, helper))
			} else {
				zap.L().Warn("index ensure failed",
					zap.String("collection", coll.Name()),
					zap.String("name", desiredName),
					zap.String("keys", desiredSig),
					zap.Error(err))
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			}
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Email must be unique across all users.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
		// Admin user list sorts by role then name.
		{
			Keys: bson.D{
				{Key: "role", Value: 1},
				{Key: "full_name_ci", Value: 1},
			},
			Options: options.Index().SetName("users_role_name"),
		},
	})
}

func ensureJobs(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("jobs")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Public careers page: newest postings first.
		{
			Keys:    bson.D{{Key: "posted_at", Value: -1}},
			Options: options.Index().SetName("jobs_posted_at_desc"),
		},
	})
}

func ensureApplications(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("job_applications")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Admin drills into applications per posting.
		{
			Keys: bson.D{
				{Key: "job_id", Value: 1},
				{Key: "submitted_at", Value: -1},
			},
			Options: options.Index().SetName("applications_job_submitted"),
		},
		{
			Keys:    bson.D{{Key: "submitted_at", Value: -1}},
			Options: options.Index().SetName("applications_submitted_desc"),
		},
	})
}

func ensureNewsEvents(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("news_events")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("news_date_desc"),
		},
		{
			Keys: bson.D{
				{Key: "type", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().SetName("news_type_date"),
		},
	})
}

func ensureContacts(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("contact_submissions")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "submitted_at", Value: -1}},
			Options: options.Index().SetName("contacts_submitted_desc"),
		},
		// Unread badge on the admin dashboard counts on this.
		{
			Keys: bson.D{
				{Key: "is_read", Value: 1},
				{Key: "submitted_at", Value: -1},
			},
			Options: options.Index().SetName("contacts_unread_submitted"),
		},
	})
}

func ensureVolunteers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("volunteer_registrations")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "registered_at", Value: -1}},
			Options: options.Index().SetName("volunteers_registered_desc"),
		},
	})
}

func ensurePages(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("pages")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_pages_slug"),
		},
	})
}
