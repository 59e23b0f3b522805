package quant

// kernelTap is one neighbor of the error-diffusion kernel, expressed
// for a left-to-right scan. A mirrored set (dx negated) is derived for
// right-to-left rows.
type kernelTap struct {
	dx, dy int
	weight int
}

// Kernel is a fixed error-diffusion weight table. The neighbor at
// (x+dx, y+dy) receives error * weight / denom.
type Kernel struct {
	taps  []kernelTap
	denom int
}

func (k Kernel) mirrored() Kernel {
	taps := make([]kernelTap, len(k.taps))
	for i, t := range k.taps {
		taps[i] = kernelTap{dx: -t.dx, dy: t.dy, weight: t.weight}
	}
	return Kernel{taps: taps, denom: k.denom}
}

var kernels = map[Method]Kernel{
	MethodFloydSteinberg: {
		taps: []kernelTap{
			{1, 0, 7},
			{-1, 1, 3}, {0, 1, 5}, {1, 1, 1},
		},
		denom: 16,
	},
	MethodJarvis: {
		taps: []kernelTap{
			{1, 0, 7}, {2, 0, 5},
			{-2, 1, 3}, {-1, 1, 5}, {0, 1, 7}, {1, 1, 5}, {2, 1, 3},
			{-2, 2, 1}, {-1, 2, 3}, {0, 2, 5}, {1, 2, 3}, {2, 2, 1},
		},
		denom: 48,
	},
	MethodStucki: {
		taps: []kernelTap{
			{1, 0, 8}, {2, 0, 4},
			{-2, 1, 2}, {-1, 1, 4}, {0, 1, 8}, {1, 1, 4}, {2, 1, 2},
			{-2, 2, 1}, {-1, 2, 2}, {0, 2, 4}, {1, 2, 2}, {2, 2, 1},
		},
		denom: 42,
	},
	MethodBurkes: {
		taps: []kernelTap{
			{1, 0, 8}, {2, 0, 4},
			{-2, 1, 2}, {-1, 1, 4}, {0, 1, 8}, {1, 1, 4}, {2, 1, 2},
		},
		denom: 32,
	},
	// Atkinson deliberately diffuses only 6/8 of the error.
	MethodAtkinson: {
		taps: []kernelTap{
			{1, 0, 1}, {2, 0, 1},
			{-1, 1, 1}, {0, 1, 1}, {1, 1, 1},
			{0, 2, 1},
		},
		denom: 8,
	},
	MethodSierraLite: {
		taps: []kernelTap{
			{1, 0, 2},
			{-1, 1, 1}, {0, 1, 1},
		},
		denom: 4,
	},
	MethodSierra2: {
		taps: []kernelTap{
			{1, 0, 4}, {2, 0, 3},
			{-2, 1, 1}, {-1, 1, 2}, {0, 1, 3}, {1, 1, 2}, {2, 1, 1},
		},
		denom: 16,
	},
	MethodSierra3: {
		taps: []kernelTap{
			{1, 0, 5}, {2, 0, 3},
			{-2, 1, 2}, {-1, 1, 4}, {0, 1, 5}, {1, 1, 4}, {2, 1, 2},
			{-1, 2, 2}, {0, 2, 3}, {1, 2, 2},
		},
		denom: 32,
	},
}
