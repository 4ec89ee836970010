package level

import "github.com/younwookim/gravityshift/internal/domain/mechanics"

// Shared extents of catalog content
var (
	spawnPoint   = V(1.5, 4.1) // resting on the first island
	spikeHalf    = V(0.7, 0.25)
	enemyHalf    = V(0.4, 0.5)
	boxHalf      = V(0.5, 0.5)
	gravZoneHalf = V(1.5, 3)
	islandHalf   = V(2.5, 1.5)
	ledgeHalf    = V(1.5, 1.2)
)

const (
	islandFriction = 0.25
	ledgeFriction  = 0.3
)

func platform(x, y float64, half Vec, friction float64) PlatformData {
	return PlatformData{Position: V(x, y), HalfSize: half, Friction: friction, Type: PlatformNormal}
}

func island(x, y float64) PlatformData {
	return platform(x, y, islandHalf, islandFriction)
}

func ledge(x, y float64) PlatformData {
	return platform(x, y, ledgeHalf, ledgeFriction)
}

func launcher(x, y, ix, iy float64) PlatformData {
	p := ledge(x, y)
	p.Type = PlatformImpulse
	p.Impulse = V(ix, iy)
	return p
}

func spikes(points ...Vec) []SpikeData {
	out := make([]SpikeData, len(points))
	for i, p := range points {
		out[i] = SpikeData{Position: p, HalfSize: spikeHalf}
	}
	return out
}

func enemies(points ...Vec) []EnemyData {
	out := make([]EnemyData, len(points))
	for i, p := range points {
		out[i] = EnemyData{Position: p, HalfSize: enemyHalf}
	}
	return out
}

func boxes(points ...Vec) []BoxData {
	out := make([]BoxData, len(points))
	for i, p := range points {
		out[i] = BoxData{Position: p, HalfSize: boxHalf}
	}
	return out
}

func gravityZone(x, y float64, d mechanics.Direction) GravityZoneData {
	return GravityZoneData{Position: V(x, y), HalfSize: gravZoneHalf, Direction: d}
}

// DefaultCatalog returns the five built-in levels
func DefaultCatalog() *Catalog {
	return NewCatalog(introRun(), fragileCrossing(), gravityGallery(), impulseControl(), finalGauntlet())
}

// Simple island hops
func introRun() Data {
	return Data{
		Name:   "Intro Run",
		Spawn:  spawnPoint,
		Finish: V(31, 6.8),
		Platforms: []PlatformData{
			island(3, 2),
			island(10, 3),
			island(17, 4),
			island(24, 5),
			platform(31, 5.5, V(3, 1.5), islandFriction),
		},
		Spikes:  spikes(V(3, 3.8), V(10, 4.8), V(24, 6.8)),
		Enemies: enemies(V(17, 6)),
		Boxes:   boxes(V(10, 4.5)),
	}
}

// First launcher between islands
func fragileCrossing() Data {
	return Data{
		Name:   "Fragile Crossing",
		Spawn:  spawnPoint,
		Finish: V(35, 11.3),
		Platforms: []PlatformData{
			island(3, 2),
			ledge(10, 3.5),
			island(17, 5),
			launcher(24, 6.5, 8, 7),
			island(29, 8.5),
			platform(35, 9.5, V(2, 1.5), islandFriction),
		},
		Spikes:  spikes(V(3, 3.8)),
		Enemies: enemies(V(10, 4.5), V(17, 6.5), V(24, 7.5), V(29, 10)),
		Boxes:   boxes(V(17, 6.5), V(35, 11)),
	}
}

// Gravity zones between raised islands
func gravityGallery() Data {
	mid := V(2, 1.5)
	return Data{
		Name:   "Gravity Gallery",
		Spawn:  spawnPoint,
		Finish: V(43, 9.8),
		Platforms: []PlatformData{
			island(3, 2),
			platform(11, 4, mid, islandFriction),
			platform(19, 9, mid, islandFriction),
			platform(27, 9, mid, islandFriction),
			platform(35, 5, mid, islandFriction),
			island(43, 7.5),
		},
		GravityZones: []GravityZoneData{
			gravityZone(7, 4.5, mechanics.Up),
			gravityZone(15, 7, mechanics.Up),
			gravityZone(23, 7, mechanics.Down),
			gravityZone(31, 7, mechanics.Right),
			gravityZone(39, 6.5, mechanics.Down),
		},
		Spikes:  spikes(V(3, 3.8), V(11, 5.8), V(19, 10.8), V(27, 10.8), V(35, 6.8), V(43, 9.3)),
		Enemies: enemies(V(19, 10.5), V(35, 6.5), V(43, 9)),
		Boxes:   boxes(V(11, 5.5), V(27, 10.5), V(35, 6.5)),
	}
}

// Chained launchers, including a downward one
func impulseControl() Data {
	return Data{
		Name:   "Impulse Control",
		Spawn:  spawnPoint,
		Finish: V(78, 16.8),
		Platforms: []PlatformData{
			island(3, 2),
			launcher(12, 3.5, 11, 8),
			island(22, 9),
			launcher(30, 9.5, 13, 6),
			island(40, 13.5),
			ledge(47, 14),
			launcher(54, 13.5, 11, -8),
			platform(62, 7, V(2, 1.5), islandFriction),
			launcher(70, 7.5, 9, 10),
			platform(78, 15.5, V(3, 1.5), islandFriction),
		},
		Spikes: spikes(
			V(3, 3.8), V(12, 5.3), V(22, 10.8), V(30, 11.3), V(40, 15.3),
			V(47, 15.8), V(54, 15.3), V(62, 9.3), V(70, 9.8),
		),
		Enemies: enemies(V(22, 10.5), V(40, 14.5), V(62, 8.5), V(78, 16.5)),
		Boxes:   boxes(V(22, 10.5), V(30, 11), V(62, 8.5), V(70, 9)),
	}
}

// Everything combined
func finalGauntlet() Data {
	return Data{
		Name:   "Final Gauntlet",
		Spawn:  spawnPoint,
		Finish: V(102, 12.8),
		Platforms: []PlatformData{
			island(3, 2),
			ledge(11, 3.5),
			ledge(19, 4.5),
			island(27, 6),
			platform(35, 10.5, V(2, 1.5), islandFriction),
			platform(43, 10.5, V(2, 1.5), islandFriction),
			launcher(51, 6.5, 15, 11),
			platform(62, 15, V(3, 1.5), islandFriction),
			ledge(70, 15.5),
			ledge(78, 16),
			launcher(86, 15.5, 11, -9),
			platform(94, 8.5, V(3, 1.5), islandFriction),
			island(102, 11),
		},
		GravityZones: []GravityZoneData{
			gravityZone(31, 8, mechanics.Up),
			gravityZone(39, 8, mechanics.Down),
			gravityZone(47, 8.5, mechanics.Right),
		},
		Spikes: spikes(
			V(3, 3.8), V(11, 5.3), V(19, 6.3), V(27, 7.8), V(35, 12.3), V(43, 12.3),
			V(51, 8.3), V(62, 16.8), V(70, 17.3), V(78, 17.8), V(86, 17.3), V(94, 10.3),
		),
		Enemies: enemies(V(27, 7.5), V(35, 12), V(62, 16.5), V(94, 10), V(102, 12.5)),
		Boxes:   boxes(V(27, 7.5), V(35, 12), V(43, 12), V(62, 16.5), V(70, 17), V(94, 10)),
	}
}
