package main

import (
	"math"
	"math/rand"
	"slices"
	"time"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Lists"
	"github.com/g-m-twostay/go-collections/Maps"
	"github.com/g-m-twostay/go-collections/Trees"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type config struct {
	numKeys, rounds int
	seed            int64
	structures      []string
}

// workload is one round on a structure: insert all keys, look all of them up, remove every other
// one. It returns fields describing the final shape of the structure.
type workload func(keys []int) ([]zap.Field, error)

var workloads = map[string]workload{
	"avl":    mapWorkload(func() shapedMap { return avlShape{Trees.NewAVL[int, int]()} }),
	"bst":    mapWorkload(func() shapedMap { return bstShape{Trees.NewBST[int, int]()} }),
	"closed": mapWorkload(func() shapedMap { return closedShape{Maps.NewClosedMap[int, int](0, Go_Collections.HashInt)} }),
	"chain":  mapWorkload(func() shapedMap { return chainShape{Maps.NewChainMap[int, int](0, Go_Collections.HashInt)} }),
	"list":   listWorkload,
}

func allStructures() []string {
	r := make([]string, 0, len(workloads))
	for k := range workloads {
		r = append(r, k)
	}
	slices.Sort(r)
	return r
}

type shapedMap interface {
	Go_Collections.Map[int, int]
	shape() []zap.Field
}

type avlShape struct{ *Trees.AVLTree[int, int] }

func (u avlShape) shape() []zap.Field {
	return []zap.Field{zap.Int("height", u.Height()), zap.Bool("corrupt", u.Corrupt())}
}

type bstShape struct{ *Trees.BSTree[int, int] }

func (u bstShape) shape() []zap.Field {
	return []zap.Field{zap.Int("height", u.Height())}
}

type closedShape struct{ *Maps.ClosedMap[int, int] }

func (u closedShape) shape() []zap.Field {
	return []zap.Field{zap.Int("capacity", u.Capacity()), zap.Int("maxSize", u.MaxSize())}
}

type chainShape struct{ *Maps.ChainMap[int, int] }

func (u chainShape) shape() []zap.Field {
	return []zap.Field{zap.Int("buckets", u.Buckets()), zap.Int("maxSize", u.MaxSize())}
}

func mapWorkload(create func() shapedMap) workload {
	return func(keys []int) ([]zap.Field, error) {
		m := create()
		distinct := make(map[int]struct{}, len(keys))
		for _, k := range keys {
			m.Put(k, -k)
			distinct[k] = struct{}{}
		}
		for _, k := range keys {
			if v, ok := m.Get(k); !ok || v != -k {
				return nil, errors.Errorf("key %d: got (%d, %t)", k, v, ok)
			}
		}
		for i, k := range keys {
			if i&1 == 0 {
				if _, ok := m.Remove(k); ok {
					delete(distinct, k)
				}
			}
		}
		if m.Size() != len(distinct) {
			return nil, errors.Errorf("size is %d, want %d", m.Size(), len(distinct))
		}
		return append(m.shape(), zap.Int("size", m.Size())), nil
	}
}

func listWorkload(keys []int) ([]zap.Field, error) {
	l := Lists.New[int]()
	for i, k := range keys {
		if i&1 == 0 {
			l.AddFirst(k)
		} else {
			l.AddLast(k)
		}
	}
	for l.Size() > len(keys)/2 {
		if _, err := l.RemoveLast(); err != nil {
			return nil, errors.Wrap(err, "shrink list")
		}
	}
	return []zap.Field{zap.Int("size", l.Size())}, nil
}

// stats of the round durations in milliseconds.
func stats(ds []time.Duration) (avg, stddev float64) {
	for _, d := range ds {
		avg += float64(d.Microseconds()) / 1000
	}
	avg /= float64(len(ds))
	for _, d := range ds {
		a := float64(d.Microseconds())/1000 - avg
		stddev += a * a
	}
	return avg, math.Sqrt(stddev / float64(len(ds)))
}

func run(logger *zap.Logger, c config) error {
	if c.rounds <= 0 || c.numKeys <= 0 {
		return errors.Errorf("keys and rounds must be positive, got %d and %d", c.numKeys, c.rounds)
	}
	rg := rand.New(rand.NewSource(c.seed))
	keys := make([]int, c.numKeys)
	for _, name := range c.structures {
		w, ok := workloads[name]
		if !ok {
			return errors.Errorf("unknown structure %q, want one of %v", name, allStructures())
		}
		ds := make([]time.Duration, 0, c.rounds)
		var shape []zap.Field
		for i := range c.rounds {
			for j := range keys {
				keys[j] = rg.Intn(c.numKeys * 2)
			}
			start := time.Now()
			fs, err := w(keys)
			if err != nil {
				return errors.Wrapf(err, "%s round %d", name, i)
			}
			ds = append(ds, time.Since(start))
			shape = fs
			logger.Debug("round", zap.String("structure", name), zap.Int("round", i), zap.Duration("elapsed", ds[i]))
		}
		avg, stddev := stats(ds)
		logger.Info("measured", append([]zap.Field{
			zap.String("structure", name),
			zap.Int("keys", c.numKeys),
			zap.Int("rounds", c.rounds),
			zap.Float64("avgMs", avg),
			zap.Float64("stddevMs", stddev),
		}, shape...)...)
	}
	return nil
}
