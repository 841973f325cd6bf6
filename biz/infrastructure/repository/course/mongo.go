package course

import (
	"context"
	"time"

	"campus-lms/biz/infrastructure/config"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixCourseCacheKey = "cache:course"
	CourseCollectionName = "course"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewCourseMongoMapper collection: %s", CourseCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CourseCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, c *Course) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, c)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, c *Course) error {
	c.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, c.ID, bson.M{"$set": c})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Course
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &c, nil
}

// CourseFilter 目录筛选条件
type CourseFilter struct {
	Search        string
	Category      string
	Level         string
	PublishedOnly bool
}

// FindMany 课程目录查询，标题/描述/标签模糊搜索
func (m *MongoMapper) FindMany(ctx context.Context, f CourseFilter, page, pageSize int64) ([]*Course, int64, error) {
	filter := bson.M{}
	if f.PublishedOnly {
		filter[consts.IsPublished] = true
	}
	if f.Search != "" {
		filter[consts.Or] = bson.A{
			bson.M{"title": bson.M{consts.Regex: f.Search, consts.Options: "i"}},
			bson.M{"description": bson.M{consts.Regex: f.Search, consts.Options: "i"}},
			bson.M{"tags": bson.M{consts.Regex: f.Search, consts.Options: "i"}},
		}
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Level != "" {
		filter["level"] = f.Level
	}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var courses []*Course
	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &courses, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// FindByInstructor 讲师名下已发布课程
func (m *MongoMapper) FindByInstructor(ctx context.Context, instructorID string) ([]*Course, error) {
	var courses []*Course
	err := m.conn.Find(ctx, &courses, bson.M{
		consts.InstructorID: instructorID,
		consts.IsPublished:  true,
	}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
