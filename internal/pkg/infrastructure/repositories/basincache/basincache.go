package basincache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
)

// BasinCache persists one basin geometry per station so that repeated
// watershed resolutions do not download the geometry again.
type BasinCache interface {
	Read(ctx context.Context, stationID string) (*domain.FeatureCollection, bool, error)
	Write(ctx context.Context, stationID string, fc *domain.FeatureCollection) error
}

func New(dataDir string) BasinCache {
	return &fileCache{dataDir: dataDir}
}

type fileCache struct {
	dataDir string
}

const geometryFileName = "geometry.geojson"

func (c *fileCache) entryPath(stationID string) string {
	return filepath.Join(c.dataDir, stationID, geometryFileName)
}

// Read reports found=false only when no entry exists. An entry that cannot
// be read or decoded is a persistence failure, never a miss.
func (c *fileCache) Read(ctx context.Context, stationID string) (*domain.FeatureCollection, bool, error) {
	body, err := os.ReadFile(c.entryPath(stationID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("%w: failed to read cached basin for %s: %s", domain.ErrPersistence, stationID, err.Error())
	}

	fc := &domain.FeatureCollection{}
	if err := json.Unmarshal(body, fc); err != nil {
		return nil, false, fmt.Errorf("%w: cached basin for %s is not valid geojson: %s", domain.ErrPersistence, stationID, err.Error())
	}

	return fc, true, nil
}

// Write stores the geometry durably before returning. The entry is written
// to a uniquely named temp file, synced and renamed into place, so readers
// never observe a partial entry and concurrent writers for the same station
// settle on last-writer-wins.
func (c *fileCache) Write(ctx context.Context, stationID string, fc *domain.FeatureCollection) error {
	dir := filepath.Join(c.dataDir, stationID)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create cache directory %s: %s", domain.ErrPersistence, dir, err.Error())
	}

	body, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal basin for %s: %s", domain.ErrPersistence, stationID, err.Error())
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s", geometryFileName, uuid.NewString()))

	if err := writeAndSync(tmpPath, body); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write basin for %s: %s", domain.ErrPersistence, stationID, err.Error())
	}

	if err := os.Rename(tmpPath, c.entryPath(stationID)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to move basin for %s into place: %s", domain.ErrPersistence, stationID, err.Error())
	}

	return nil
}

func writeAndSync(path string, body []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.Write(body); err != nil {
		f.Close()
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
