package multicast

// Argument tuples used by the fixed-arity events. Each EventN is a Dispatcher
// over the matching ArgsN, so ordering and fault handling are shared.
type (
	Args0 struct{}

	Args1[T1 any] struct {
		V1 T1
	}

	Args2[T1, T2 any] struct {
		V1 T1
		V2 T2
	}

	Args3[T1, T2, T3 any] struct {
		V1 T1
		V2 T2
		V3 T3
	}

	Args4[T1, T2, T3, T4 any] struct {
		V1 T1
		V2 T2
		V3 T3
		V4 T4
	}

	Args5[T1, T2, T3, T4, T5 any] struct {
		V1 T1
		V2 T2
		V3 T3
		V4 T4
		V5 T5
	}

	Args6[T1, T2, T3, T4, T5, T6 any] struct {
		V1 T1
		V2 T2
		V3 T3
		V4 T4
		V5 T5
		V6 T6
	}
)
