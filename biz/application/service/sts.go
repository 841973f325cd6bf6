package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/biz/infrastructure/config"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/repository/user"
	"campus-lms/biz/infrastructure/util/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/google/wire"
)

type IStsService interface {
	GenUploadURL(ctx context.Context, req *lms.UploadURLReq) (*lms.UploadURLResp, error)
}

type StsService struct {
	Config     *config.Config
	UserMapper *user.MongoMapper
}

var StsServiceSet = wire.NewSet(
	wire.Struct(new(StsService), "*"),
	wire.Bind(new(IStsService), new(*StsService)),
)

// GenUploadURL 签发附件直传地址
// 对象key按用户隔离，带随机前缀避免覆盖
func (s *StsService) GenUploadURL(ctx context.Context, req *lms.UploadURLReq) (*lms.UploadURLResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	if req.Filename == "" {
		return nil, consts.ErrInvalidParams
	}

	oss := s.Config.Oss
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(oss.Region),
		Endpoint:    aws.String(oss.Endpoint),
		Credentials: credentials.NewStaticCredentials(oss.AccessKeyID, oss.SecretAccessKey, ""),
	})
	if err != nil {
		log.CtxError(ctx, "创建OSS会话失败: %v", err)
		return nil, consts.ErrSignURL
	}

	key := fmt.Sprintf("attachments/%s/%s%s", userMeta.GetUserId(), uuid.New().String(), path.Ext(req.Filename))

	expire := time.Duration(oss.ExpireSeconds) * time.Second
	if expire <= 0 {
		expire = 15 * time.Minute
	}

	svc := s3.New(sess)
	putReq, _ := svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(oss.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(req.FileType),
	})
	uploadURL, err := putReq.Presign(expire)
	if err != nil {
		log.CtxError(ctx, "签发上传地址失败: %v", err)
		return nil, consts.ErrSignURL
	}

	return &lms.UploadURLResp{
		UploadURL: uploadURL,
		FileURL:   fmt.Sprintf("https://%s.%s/%s", oss.Bucket, oss.Endpoint, key),
		ExpiresIn: int64(expire.Seconds()),
	}, nil
}
