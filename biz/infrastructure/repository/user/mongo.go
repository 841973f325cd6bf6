package user

import (
	"context"
	"errors"
	"time"

	"campus-lms/biz/infrastructure/config"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixUserCacheKey = "cache:user"
	UserCollectionName = "user"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewUserMongoMapper collection: %s", UserCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, UserCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, u *User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, u)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, u *User) error {
	u.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, u.ID, bson.M{"$set": u})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var u User
	err = m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &u, nil
}

// FindByEmail 根据邮箱查找用户
func (m *MongoMapper) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{consts.Email: email})
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindByName 根据姓名组合查找用户
func (m *MongoMapper) FindByName(ctx context.Context, firstName, lastName string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		"first_name": firstName,
		"last_name":  lastName,
	})
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindMany 管理端用户列表，支持姓名/邮箱模糊搜索与角色过滤
func (m *MongoMapper) FindMany(ctx context.Context, search, role string, page, pageSize int64) ([]*User, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter[consts.Or] = bson.A{
			bson.M{"first_name": bson.M{consts.Regex: search, consts.Options: "i"}},
			bson.M{"last_name": bson.M{consts.Regex: search, consts.Options: "i"}},
			bson.M{consts.Email: bson.M{consts.Regex: search, consts.Options: "i"}},
		}
	}
	if role != "" {
		filter[consts.Role] = role
	}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var users []*User
	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &users, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
