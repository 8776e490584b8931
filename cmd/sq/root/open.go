package root

import (
	"context"

	"studyquest/internal/engine"
	"studyquest/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	store, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	svc, err := engine.NewService(ctx, store, engine.SystemClock{})
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	cleanup := func() {
		_ = store.Close()
	}
	return svc, cleanup, nil
}
