package game

import log "github.com/sirupsen/logrus"

// SpatialIndex partitions the world into a uniform grid of square cells
// for neighborhood queries. It is rebuilt from the registry once per
// frame, after movement and before collision resolution, so it always
// reflects post-movement positions. It stores IDs, never entity pointers:
// the registry remains the only owner of entity storage.
type SpatialIndex struct {
	reg      *Registry
	cellSize float64
	countX   int
	countY   int
	cells    [][]EntityID
}

// NewSpatialIndex creates an index over the configured world bounds.
func NewSpatialIndex(cfg Config, reg *Registry) *SpatialIndex {
	countX := cfg.CellCountX()
	countY := cfg.CellCountY()
	cells := make([][]EntityID, countX*countY)
	for i := range cells {
		cells[i] = make([]EntityID, 0, 8)
	}
	return &SpatialIndex{
		reg:      reg,
		cellSize: cfg.CellSize,
		countX:   countX,
		countY:   countY,
		cells:    cells,
	}
}

// cellCoords converts a world position to clamped cell coordinates.
func (s *SpatialIndex) cellCoords(p Vec2) (int, int) {
	cx := int(p.X / s.cellSize)
	cy := int(p.Y / s.cellSize)
	cx = max(0, min(cx, s.countX-1))
	cy = max(0, min(cy, s.countY-1))
	return cx, cy
}

// Rebuild clears the grid and reinserts every active entity. Entities
// with a non-finite position are excluded and logged; they simply do not
// participate in collision this frame.
func (s *SpatialIndex) Rebuild() {
	for i := range s.cells {
		s.cells[i] = s.cells[i][:0]
	}
	s.reg.ForEachActive(KindAny, func(e *Entity) {
		if !e.Pos.IsFinite() {
			log.WithFields(log.Fields{
				"entity": e.ID,
				"kind":   e.Kind.String(),
			}).Warn("non-finite position, excluding from spatial index")
			return
		}
		cx, cy := s.cellCoords(e.Pos)
		idx := cy*s.countX + cx
		s.cells[idx] = append(s.cells[idx], e.ID)
	})
}

// Query visits every active entity whose center lies within radius of p.
// Candidates come from the cells overlapping the query circle's bounding
// box; the exact distance check filters the rest. Callers still perform
// their own circle-circle test against each entity's own radius.
func (s *SpatialIndex) Query(p Vec2, radius float64, fn func(*Entity)) {
	minX, minY := s.cellCoords(Vec2{p.X - radius, p.Y - radius})
	maxX, maxY := s.cellCoords(Vec2{p.X + radius, p.Y + radius})

	radiusSq := radius * radius
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, id := range s.cells[cy*s.countX+cx] {
				e, ok := s.reg.Get(id)
				if !ok {
					continue
				}
				if e.Pos.Sub(p).LengthSq() <= radiusSq {
					fn(e)
				}
			}
		}
	}
}
