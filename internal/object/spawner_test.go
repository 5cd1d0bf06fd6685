package object

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnerSpawnsAtRate(t *testing.T) {
	now := time.Now()
	sp := NewShapeSpawner(SpawnConfig{
		TargetKind:  KindStar,
		Rate:        2.0,
		Lifespan:    5 * time.Second,
		TargetRatio: 1.0,
		MaxShapes:   10,
	}, testScreen())

	rec := &recordingSpawner{}
	ctx := testCtx(now, 16*time.Millisecond, rec)

	_, err := sp.Update(ctx)
	require.NoError(t, err)
	require.Len(t, rec.spawned, 1, "first update spawns immediately")

	// Too soon for the next one at 2/sec.
	ctx.Now = now.Add(100 * time.Millisecond)
	_, err = sp.Update(ctx)
	require.NoError(t, err)
	assert.Len(t, rec.spawned, 1)

	ctx.Now = now.Add(600 * time.Millisecond)
	_, err = sp.Update(ctx)
	require.NoError(t, err)
	assert.Len(t, rec.spawned, 2)
}

func TestSpawnerRespectsCap(t *testing.T) {
	now := time.Now()
	sp := NewShapeSpawner(SpawnConfig{
		TargetKind:  KindStar,
		Rate:        100.0,
		Lifespan:    time.Minute,
		TargetRatio: 1.0,
		MaxShapes:   2,
	}, testScreen())

	rec := &recordingSpawner{}
	ctx := testCtx(now, 16*time.Millisecond, rec)
	ctx.Objects = []Object{
		NewShape(KindStar, 10, 10, true, time.Minute, now),
		NewShape(KindStar, 20, 20, true, time.Minute, now),
	}

	_, err := sp.Update(ctx)
	require.NoError(t, err)
	assert.Empty(t, rec.spawned, "population at cap, nothing spawns")
}

func TestSpawnerAllTargets(t *testing.T) {
	now := time.Now()
	sp := NewShapeSpawner(SpawnConfig{
		TargetKind:      KindHeart,
		DistractorKinds: []Kind{KindCircle},
		Rate:            100.0,
		Lifespan:        time.Minute,
		TargetRatio:     1.0,
		MaxShapes:       50,
	}, testScreen())

	rec := &recordingSpawner{}
	for i := 0; i < 10; i++ {
		ctx := testCtx(now.Add(time.Duration(i)*time.Second), 16*time.Millisecond, rec)
		_, err := sp.Update(ctx)
		require.NoError(t, err)
	}

	require.NotEmpty(t, rec.spawned)
	for _, obj := range rec.spawned {
		shape := obj.(*Shape)
		assert.True(t, shape.IsTarget)
		assert.Equal(t, KindHeart, shape.Kind)
	}
}

func TestSpawnerAllDistractors(t *testing.T) {
	now := time.Now()
	sp := NewShapeSpawner(SpawnConfig{
		TargetKind:      KindHeart,
		DistractorKinds: []Kind{KindCircle, KindTriangle},
		Rate:            100.0,
		Lifespan:        time.Minute,
		TargetRatio:     0.0,
		MaxShapes:       50,
	}, testScreen())

	rec := &recordingSpawner{}
	for i := 0; i < 10; i++ {
		ctx := testCtx(now.Add(time.Duration(i)*time.Second), 16*time.Millisecond, rec)
		_, err := sp.Update(ctx)
		require.NoError(t, err)
	}

	require.NotEmpty(t, rec.spawned)
	for _, obj := range rec.spawned {
		shape := obj.(*Shape)
		assert.False(t, shape.IsTarget)
		assert.NotEqual(t, KindHeart, shape.Kind)
	}
}

func TestSpawnerPlacesInsideMargins(t *testing.T) {
	now := time.Now()
	sp := NewShapeSpawner(SpawnConfig{
		TargetKind:  KindStar,
		Rate:        100.0,
		Lifespan:    time.Minute,
		TargetRatio: 1.0,
		MaxShapes:   100,
	}, testScreen())

	rec := &recordingSpawner{}
	screen := testScreen()
	for i := 0; i < 50; i++ {
		ctx := testCtx(now.Add(time.Duration(i)*time.Second), 16*time.Millisecond, rec)
		_, err := sp.Update(ctx)
		require.NoError(t, err)
	}

	for _, obj := range rec.spawned {
		shape := obj.(*Shape)
		assert.GreaterOrEqual(t, shape.X, spawnMargin)
		assert.LessOrEqual(t, shape.X, float64(screen.Width)-spawnMargin)
		assert.GreaterOrEqual(t, shape.Y, spawnMargin)
		assert.LessOrEqual(t, shape.Y, float64(screen.Height)-spawnMargin)
	}
}
