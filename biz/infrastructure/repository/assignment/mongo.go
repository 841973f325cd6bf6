package assignment

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
	prefixAssignmentCacheKey = "cache:assignment"
	AssignmentCollectionName = "assignment"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewAssignmentMongoMapper collection: %s", AssignmentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, AssignmentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, a *Assignment) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
		a.CreateTime = time.Now()
		a.UpdateTime = a.CreateTime
	}
	a.RefreshLateMarks()
	_, err := m.conn.InsertOneNoCache(ctx, a)
	return err
}

// Update 整文档覆盖写，最后写入者胜出
func (m *MongoMapper) Update(ctx context.Context, a *Assignment) error {
	a.UpdateTime = time.Now()
	a.RefreshLateMarks()
	_, err := m.conn.UpdateByIDNoCache(ctx, a.ID, bson.M{"$set": a})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var a Assignment
	err = m.conn.FindOneNoCache(ctx, &a, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &a, nil
}

// AssignmentFilter 列表查询条件，角色相关的裁剪由上层组装
type AssignmentFilter struct {
	CourseIDs     []string // 学生：已报名课程集合
	CourseID      string   // 指定课程
	InstructorID  string   // 讲师：本人创建的作业
	PublishedOnly bool
	DueDate       *time.Time // 按截止日所在自然日过滤
}

// FindMany 作业列表，按截止时间升序
func (m *MongoMapper) FindMany(ctx context.Context, f AssignmentFilter, page, pageSize int64) ([]*Assignment, int64, error) {
	filter := bson.M{}
	if f.CourseIDs != nil {
		filter[consts.CourseID] = bson.M{consts.In: f.CourseIDs}
	}
	if f.CourseID != "" {
		filter[consts.CourseID] = f.CourseID
	}
	if f.InstructorID != "" {
		filter[consts.InstructorID] = f.InstructorID
	}
	if f.PublishedOnly {
		filter[consts.IsPublished] = true
	}
	if f.DueDate != nil {
		dayStart := time.Date(f.DueDate.Year(), f.DueDate.Month(), f.DueDate.Day(), 0, 0, 0, 0, f.DueDate.Location())
		dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
		filter[consts.DueDate] = bson.M{consts.Gte: dayStart, consts.Lte: dayEnd}
	}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var assignments []*Assignment
	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &assignments, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.DueDate: 1},
	})
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
