package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedActor creates an actor identified by a fresh unique mbox.
// Returns the persisted domain.Actor.
func SeedActor(t *testing.T, pool *pgxpool.Pool) domain.Actor {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	mbox := "mailto:learner-" + suffix + "@example.com"
	name := "Learner " + suffix

	var a domain.Actor
	err := pool.QueryRow(ctx,
		`INSERT INTO actors (object_type, name, mbox)
		 VALUES ('Agent', $1, $2)
		 RETURNING id, object_type, name, mbox, mbox_sha1sum, openid, account_id, created_at`,
		name, mbox,
	).Scan(&a.ID, &a.ObjectType, &a.Name, &a.Mbox, &a.MboxSHA1Sum, &a.OpenID, &a.AccountID, &a.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedActor: %v", err)
	}

	return a
}

// SeedVerb creates a verb with a fresh unique IRI and an en-US display entry.
func SeedVerb(t *testing.T, pool *pgxpool.Pool) domain.Verb {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	v := domain.Verb{
		ID:      "https://example.com/verbs/seeded-" + suffix,
		Display: domain.LanguageMap{"en-US": "seeded " + suffix},
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO verbs (id, display) VALUES ($1, $2)`,
		v.ID, map[string]string(v.Display),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVerb: %v", err)
	}

	return v
}

// SeedObject creates an Activity object with a fresh unique IRI.
func SeedObject(t *testing.T, pool *pgxpool.Pool) domain.Object {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	o := domain.Object{
		ID:   "https://example.com/activities/seeded-" + suffix,
		Type: domain.ObjectTypeActivity,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO objects (id, object_type) VALUES ($1, $2)`,
		o.ID, o.Type,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedObject: %v", err)
	}

	return o
}

// SeedStatement creates a statement with its own fresh actor, verb, and object.
func SeedStatement(t *testing.T, pool *pgxpool.Pool) domain.Statement {
	t.Helper()
	ctx := context.Background()

	actor := SeedActor(t, pool)
	verb := SeedVerb(t, pool)
	object := SeedObject(t, pool)

	var st domain.Statement
	err := pool.QueryRow(ctx,
		`INSERT INTO statements (actor_id, verb_id, object_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, actor_id, verb_id, object_id, "timestamp", created_at`,
		actor.ID, verb.ID, object.ID,
	).Scan(&st.ID, &st.ActorID, &st.VerbID, &st.ObjectID, &st.Timestamp, &st.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedStatement: %v", err)
	}

	return st
}
