package mongodb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	e "gymme/internal/core/domain/errors"
	"gymme/internal/core/domain/member"
)

// MongoMemberRepository also holds the courses collection: deleting a
// member has to pull its embedded snapshots out of every course in the
// same logical operation.
type MongoMemberRepository struct {
	members *mongo.Collection
	courses *mongo.Collection
}

func NewMongoMemberRepository(members *mongo.Collection, courses *mongo.Collection) *MongoMemberRepository {
	if members == nil {
		panic(e.NewNilArgumentError("members"))
	}
	if courses == nil {
		panic(e.NewNilArgumentError("courses"))
	}
	return &MongoMemberRepository{members: members, courses: courses}
}

func (r *MongoMemberRepository) FindAll(ctx context.Context) ([]member.Member, error) {
	sort := options.Find().SetSort(bson.D{{Key: "surname", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.members.Find(ctx, bson.D{}, sort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	members := make([]member.Member, 0)
	for cursor.Next(ctx) {
		var doc memberDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		m, err := decodeMember(doc)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, cursor.Err()
}

func (r *MongoMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (m member.Member, ok bool, err error) {
	var doc memberDocument
	err = r.members.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return m, false, nil
	}
	if err != nil {
		return m, false, err
	}
	m, err = decodeMember(doc)
	if err != nil {
		return m, false, err
	}
	return m, true, nil
}

func (r *MongoMemberRepository) Save(ctx context.Context, m member.Member) error {
	_, err := r.members.InsertOne(ctx, encodeMember(m))
	return err
}

func (r *MongoMemberRepository) Update(ctx context.Context, m member.Member) error {
	_, err := r.members.ReplaceOne(ctx, bson.M{"_id": m.ID.String()}, encodeMember(m))
	return err
}

func (r *MongoMemberRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := r.members.DeleteOne(ctx, bson.M{"_id": id.String()}); err != nil {
		return err
	}
	_, err := r.courses.UpdateMany(
		ctx,
		bson.M{"subscribers.id": id.String()},
		bson.M{"$pull": bson.M{"subscribers": bson.M{"id": id.String()}}},
	)
	return err
}
