package clients

import (
	"context"
	"encoding/json"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinIOClient создаёт клиент MinIO. Соединение не устанавливается до первого запроса.
func NewMinIOClient(cfg *cfg.MinIOCfg) (*minio.Client, error) {
	if !cfg.Configured() {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrStorageNotConfigured)
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioRootUser, cfg.MinioRootPassword, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return client, nil
}

// EnsureBucket создаёт бакет, если его ещё нет, и открывает объекты на анонимное чтение:
// ссылки на изображения товаров отдаются клиентам как есть.
func EnsureBucket(ctx context.Context, client *minio.Client, bucketName string) error {
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	policy, err := PublicReadPolicy(bucketName)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := client.SetBucketPolicy(ctx, bucketName, policy); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

type bucketPolicy struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Effect    string              `json:"Effect"`
	Principal map[string][]string `json:"Principal"`
	Action    []string            `json:"Action"`
	Resource  []string            `json:"Resource"`
}

// PublicReadPolicy возвращает политику бакета, разрешающую анонимный s3:GetObject.
// Листинг бакета остаётся закрытым.
func PublicReadPolicy(bucketName string) (string, error) {
	policy := bucketPolicy{
		Version: "2012-10-17",
		Statement: []policyStatement{{
			Effect:    "Allow",
			Principal: map[string][]string{"AWS": {"*"}},
			Action:    []string{"s3:GetObject"},
			Resource:  []string{"arn:aws:s3:::" + bucketName + "/*"},
		}},
	}

	raw, err := json.Marshal(policy)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
