// Package storage opens game data documents held in object storage.
//
// A [Store] is a read-only view over a bucket or directory. Two
// implementations are provided: [S3Store] for S3-compatible services (AWS,
// MinIO, R2) and [FSStore] for any io/fs file system, which is convenient for
// local data dumps and tests.
//
//	store, err := storage.New(storage.Config{
//		Bucket:    "heroes-data",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//	})
//	if err != nil {
//		return err
//	}
//
//	body, err := store.Get(ctx, "76893/gamestrings_76893_kokr.json")
//	if err != nil {
//		return err
//	}
//	defer body.Close()
//
// Errors are normalized to the package sentinels; use errors.Is with
// [ErrNotFound] and [ErrAccessDenied] rather than inspecting SDK types.
package storage
