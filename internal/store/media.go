package store

import (
	"context"
	"fmt"

	"github.com/rahulnair/lingua/ent"
	"github.com/rahulnair/lingua/ent/mediaasset"
)

// mediaRepo implements MediaRepo using the ent client.
type mediaRepo struct {
	client *ent.Client
}

func (r *mediaRepo) Get(ctx context.Context, key string) (*MediaAsset, error) {
	a, err := r.client.MediaAsset.Query().
		Where(mediaasset.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query media asset: %w", err)
	}
	return &MediaAsset{
		Key:       a.Key,
		Kind:      a.Kind,
		MIMEType:  a.MimeType,
		Data:      a.Data,
		CreatedAt: a.CreatedAt,
	}, nil
}

func (r *mediaRepo) Put(ctx context.Context, asset MediaAsset) error {
	// Replace any prior entry so regeneration overwrites stale assets.
	_, err := r.client.MediaAsset.Delete().
		Where(mediaasset.Key(asset.Key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear media asset: %w", err)
	}

	_, err = r.client.MediaAsset.Create().
		SetKey(asset.Key).
		SetKind(asset.Kind).
		SetMimeType(asset.MIMEType).
		SetData(asset.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save media asset: %w", err)
	}
	return nil
}
