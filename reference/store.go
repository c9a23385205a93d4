package reference

import (
	"fmt"
	"sync"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"go.uber.org/multierr"
)

type setKey struct {
	sex    model.Sex
	metric model.Metric
}

// Store holds one immutable ReferenceCurveSet per (sex, metric). It is safe
// for concurrent use because nothing writes to it after construction.
type Store struct {
	sets  map[setKey]*model.ReferenceCurveSet
	order []*model.ReferenceCurveSet
}

var (
	whoOnce  sync.Once
	whoStore *Store
)

// WHO returns the process-wide store of compiled-in WHO 0-24 month curves.
// It panics if the compiled-in tables are malformed; CheckWHO reports the
// same problems as an error.
func WHO() *Store {
	whoOnce.Do(func() {
		store, err := buildStore(whoTables)
		if err != nil {
			panic(fmt.Sprintf("who reference tables: %v", err))
		}
		whoStore = store
	})
	return whoStore
}

// CheckWHO builds a fresh store from the compiled-in tables and returns
// every integrity failure found, instead of panicking.
func CheckWHO() (*Store, error) {
	return buildStore(whoTables)
}

func buildStore(tables []curveTable) (*Store, error) {
	sets := make([]*model.ReferenceCurveSet, 0, len(tables))
	for i := range tables {
		sets = append(sets, tables[i].build())
	}
	store, err := NewStore(sets...)
	if err != nil {
		return nil, err
	}
	if err := store.checkComplete(); err != nil {
		return nil, err
	}
	return store, nil
}

// NewStore validates the given sets and takes a private copy of them. All
// malformed or duplicate sets are reported together.
func NewStore(sets ...*model.ReferenceCurveSet) (*Store, error) {
	if err := ValidateAll(sets...); err != nil {
		return nil, err
	}

	store := &Store{
		sets: make(map[setKey]*model.ReferenceCurveSet, len(sets)),
	}
	for _, set := range sets {
		key := setKey{sex: set.Sex, metric: set.Metric}
		owned := cloneSet(set)
		store.sets[key] = owned
		store.order = append(store.order, owned)
	}
	return store, nil
}

// CurveSet returns the shared set for sex and metric, or nil when the store
// has none for that combination. Every call returns the same pointer.
func (s *Store) CurveSet(sex model.Sex, metric model.Metric) *model.ReferenceCurveSet {
	if s == nil {
		return nil
	}
	return s.sets[setKey{sex: sex, metric: metric}]
}

// Sets returns every curve set in insertion order.
func (s *Store) Sets() []*model.ReferenceCurveSet {
	res := make([]*model.ReferenceCurveSet, len(s.order))
	copy(res, s.order)
	return res
}

func (s *Store) checkComplete() error {
	var err error
	for _, sex := range []model.Sex{model.Male, model.Female} {
		for _, metric := range model.Metrics {
			if s.CurveSet(sex, metric) == nil {
				err = multierr.Append(err, fmt.Errorf("%w: missing %v %v", common.ErrorMalformedTable, sex, metric))
			}
		}
	}
	return err
}

func (t *curveTable) build() *model.ReferenceCurveSet {
	set := &model.ReferenceCurveSet{
		Sex:    t.sex,
		Metric: t.metric,
	}
	for i, p := range model.Percentiles {
		samples := make([]model.ReferenceSample, 0, len(t.ages))
		for j, age := range t.ages {
			if j >= len(t.values[i]) {
				break
			}
			samples = append(samples, model.ReferenceSample{AgeMonths: age, Value: t.values[i][j]})
		}
		set.Curves[i] = model.PercentileCurve{Percentile: p, Samples: samples}
	}
	return set
}

func cloneSet(set *model.ReferenceCurveSet) *model.ReferenceCurveSet {
	res := &model.ReferenceCurveSet{
		Sex:    set.Sex,
		Metric: set.Metric,
	}
	for i, curve := range set.Curves {
		samples := make([]model.ReferenceSample, len(curve.Samples))
		copy(samples, curve.Samples)
		res.Curves[i] = model.PercentileCurve{Percentile: curve.Percentile, Samples: samples}
	}
	return res
}
