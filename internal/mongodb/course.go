package mongodb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gymme/internal/core/domain/course"
	e "gymme/internal/core/domain/errors"
)

// MongoCourseRepository embeds subscriber snapshots directly inside the
// course document, so reads never touch the members collection.
type MongoCourseRepository struct {
	courses *mongo.Collection
}

func NewMongoCourseRepository(courses *mongo.Collection) *MongoCourseRepository {
	if courses == nil {
		panic(e.NewNilArgumentError("courses"))
	}
	return &MongoCourseRepository{courses: courses}
}

func (r *MongoCourseRepository) FindAll(ctx context.Context) ([]course.Course, error) {
	sort := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.courses.Find(ctx, bson.D{}, sort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := make([]course.Course, 0)
	for cursor.Next(ctx) {
		var doc courseDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		c, err := decodeCourse(doc)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, cursor.Err()
}

func (r *MongoCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (c course.Course, ok bool, err error) {
	var doc courseDocument
	err = r.courses.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return c, false, nil
	}
	if err != nil {
		return c, false, err
	}
	c, err = decodeCourse(doc)
	if err != nil {
		return c, false, err
	}
	return c, true, nil
}

func (r *MongoCourseRepository) Save(ctx context.Context, c course.Course) error {
	_, err := r.courses.InsertOne(ctx, encodeCourse(c))
	return err
}

func (r *MongoCourseRepository) Update(ctx context.Context, c course.Course) error {
	_, err := r.courses.ReplaceOne(ctx, bson.M{"_id": c.ID.String()}, encodeCourse(c))
	return err
}

func (r *MongoCourseRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.courses.DeleteOne(ctx, bson.M{"_id": id.String()})
	return err
}
