package records

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/utils"
	"go.uber.org/zap"
)

// Dataset is one child's profile and growth records as kept by the record store.
type Dataset struct {
	Child   model.ChildProfile   `json:"child"`
	Records []model.GrowthRecord `json:"records"`
}

// Source loads growth records. It stands in for the application's record store.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Load(ctx context.Context) (*Dataset, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Decode(ctx, f)
}

type ReaderSource struct {
	Reader io.Reader
}

func (s *ReaderSource) Load(ctx context.Context) (*Dataset, error) {
	return Decode(ctx, s.Reader)
}

// Decode reads and validates a JSON dataset. Records without an id get a
// generated one, and records come back ordered by timestamp.
func Decode(ctx context.Context, r io.Reader) (*Dataset, error) {
	logger := utils.GetLogger(ctx)

	var dataset Dataset
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&dataset); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	if err := dataset.Validate(); err != nil {
		return nil, err
	}

	for i := range dataset.Records {
		if dataset.Records[i].ID == "" {
			dataset.Records[i].ID = uuid.New().String()
		}
	}
	sort.SliceStable(dataset.Records, func(i, j int) bool {
		return dataset.Records[i].Timestamp.Before(dataset.Records[j].Timestamp)
	})

	logger.Info("dataset loaded", zap.String("child", dataset.Child.Name),
		zap.Int("records", len(dataset.Records)))
	return &dataset, nil
}

func (d *Dataset) Validate() error {
	if !d.Child.Sex.Valid() {
		return fmt.Errorf("%w: child sex is required", common.ErrorInvalidValue)
	}
	if d.Child.BirthDate.IsZero() {
		return fmt.Errorf("%w: child birth date is required", common.ErrorInvalidValue)
	}
	for i, record := range d.Records {
		if record.Timestamp.IsZero() {
			return fmt.Errorf("%w: record %d has no timestamp", common.ErrorInvalidValue, i)
		}
		measures := []struct {
			name    string
			measure model.Measure
		}{
			{"height", record.Height},
			{"weight", record.Weight},
			{"head_circumference", record.HeadCircumference},
			{"foot_length", record.FootLength},
		}
		for _, m := range measures {
			if m.measure.Valid && m.measure.Value <= 0 {
				return fmt.Errorf("%w: record %d has non-positive %s %v", common.ErrorInvalidValue, i, m.name, m.measure.Value)
			}
		}
	}
	return nil
}
