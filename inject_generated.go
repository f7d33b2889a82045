package mydi

//go:generate go run codegen/main.go -w

func InjectFn1[R any, D1 any](b *Binder, factory func(D1) (R, error)) *Binder {
	reqs := []Requirement{
		RequirementOf[D1](),
	}
	b.add(&binderEntry{
		key:      KeyOf[R](),
		requires: reqs,
		factory: func(deps []any) (any, error) {
			d1, err := safeAssert[D1](deps[0])
			if err != nil {
				return nil, err
			}
			return factory(d1)
		},
		origin: callerOrigin(1),
	})
	return b
}

func InjectFn2[R any, D1 any, D2 any](b *Binder, factory func(D1, D2) (R, error)) *Binder {
	reqs := []Requirement{
		RequirementOf[D1](),
		RequirementOf[D2](),
	}
	b.add(&binderEntry{
		key:      KeyOf[R](),
		requires: reqs,
		factory: func(deps []any) (any, error) {
			d1, err := safeAssert[D1](deps[0])
			if err != nil {
				return nil, err
			}
			d2, err := safeAssert[D2](deps[1])
			if err != nil {
				return nil, err
			}
			return factory(d1, d2)
		},
		origin: callerOrigin(1),
	})
	return b
}

func InjectFn3[R any, D1 any, D2 any, D3 any](b *Binder, factory func(D1, D2, D3) (R, error)) *Binder {
	reqs := []Requirement{
		RequirementOf[D1](),
		RequirementOf[D2](),
		RequirementOf[D3](),
	}
	b.add(&binderEntry{
		key:      KeyOf[R](),
		requires: reqs,
		factory: func(deps []any) (any, error) {
			d1, err := safeAssert[D1](deps[0])
			if err != nil {
				return nil, err
			}
			d2, err := safeAssert[D2](deps[1])
			if err != nil {
				return nil, err
			}
			d3, err := safeAssert[D3](deps[2])
			if err != nil {
				return nil, err
			}
			return factory(d1, d2, d3)
		},
		origin: callerOrigin(1),
	})
	return b
}

func InjectFn4[R any, D1 any, D2 any, D3 any, D4 any](b *Binder, factory func(D1, D2, D3, D4) (R, error)) *Binder {
	reqs := []Requirement{
		RequirementOf[D1](),
		RequirementOf[D2](),
		RequirementOf[D3](),
		RequirementOf[D4](),
	}
	b.add(&binderEntry{
		key:      KeyOf[R](),
		requires: reqs,
		factory: func(deps []any) (any, error) {
			d1, err := safeAssert[D1](deps[0])
			if err != nil {
				return nil, err
			}
			d2, err := safeAssert[D2](deps[1])
			if err != nil {
				return nil, err
			}
			d3, err := safeAssert[D3](deps[2])
			if err != nil {
				return nil, err
			}
			d4, err := safeAssert[D4](deps[3])
			if err != nil {
				return nil, err
			}
			return factory(d1, d2, d3, d4)
		},
		origin: callerOrigin(1),
	})
	return b
}

func InjectFn5[R any, D1 any, D2 any, D3 any, D4 any, D5 any](b *Binder, factory func(D1, D2, D3, D4, D5) (R, error)) *Binder {
	reqs := []Requirement{
		RequirementOf[D1](),
		RequirementOf[D2](),
		RequirementOf[D3](),
		RequirementOf[D4](),
		RequirementOf[D5](),
	}
	b.add(&binderEntry{
		key:      KeyOf[R](),
		requires: reqs,
		factory: func(deps []any) (any, error) {
			d1, err := safeAssert[D1](deps[0])
			if err != nil {
				return nil, err
			}
			d2, err := safeAssert[D2](deps[1])
			if err != nil {
				return nil, err
			}
			d3, err := safeAssert[D3](deps[2])
			if err != nil {
				return nil, err
			}
			d4, err := safeAssert[D4](deps[3])
			if err != nil {
				return nil, err
			}
			d5, err := safeAssert[D5](deps[4])
			if err != nil {
				return nil, err
			}
			return factory(d1, d2, d3, d4, d5)
		},
		origin: callerOrigin(1),
	})
	return b
}

func InjectFn6[R any, D1 any, D2 any, D3 any, D4 any, D5 any, D6 any](b *Binder, factory func(D1, D2, D3, D4, D5, D6) (R, error)) *Binder {
	reqs := []Requirement{
		RequirementOf[D1](),
		RequirementOf[D2](),
		RequirementOf[D3](),
		RequirementOf[D4](),
		RequirementOf[D5](),
		RequirementOf[D6](),
	}
	b.add(&binderEntry{
		key:      KeyOf[R](),
		requires: reqs,
		factory: func(deps []any) (any, error) {
			d1, err := safeAssert[D1](deps[0])
			if err != nil {
				return nil, err
			}
			d2, err := safeAssert[D2](deps[1])
			if err != nil {
				return nil, err
			}
			d3, err := safeAssert[D3](deps[2])
			if err != nil {
				return nil, err
			}
			d4, err := safeAssert[D4](deps[3])
			if err != nil {
				return nil, err
			}
			d5, err := safeAssert[D5](deps[4])
			if err != nil {
				return nil, err
			}
			d6, err := safeAssert[D6](deps[5])
			if err != nil {
				return nil, err
			}
			return factory(d1, d2, d3, d4, d5, d6)
		},
		origin: callerOrigin(1),
	})
	return b
}

func InjectFn7[R any, D1 any, D2 any, D3 any, D4 any, D5 any, D6 any, D7 any](b *Binder, factory func(D1, D2, D3, D4, D5, D6, D7) (R, error)) *Binder {
	reqs := []Requirement{
		RequirementOf[D1](),
		RequirementOf[D2](),
		RequirementOf[D3](),
		RequirementOf[D4](),
		RequirementOf[D5](),
		RequirementOf[D6](),
		RequirementOf[D7](),
	}
	b.add(&binderEntry{
		key:      KeyOf[R](),
		requires: reqs,
		factory: func(deps []any) (any, error) {
			d1, err := safeAssert[D1](deps[0])
			if err != nil {
				return nil, err
			}
			d2, err := safeAssert[D2](deps[1])
			if err != nil {
				return nil, err
			}
			d3, err := safeAssert[D3](deps[2])
			if err != nil {
				return nil, err
			}
			d4, err := safeAssert[D4](deps[3])
			if err != nil {
				return nil, err
			}
			d5, err := safeAssert[D5](deps[4])
			if err != nil {
				return nil, err
			}
			d6, err := safeAssert[D6](deps[5])
			if err != nil {
				return nil, err
			}
			d7, err := safeAssert[D7](deps[6])
			if err != nil {
				return nil, err
			}
			return factory(d1, d2, d3, d4, d5, d6, d7)
		},
		origin: callerOrigin(1),
	})
	return b
}

func InjectFn8[R any, D1 any, D2 any, D3 any, D4 any, D5 any, D6 any, D7 any, D8 any](b *Binder, factory func(D1, D2, D3, D4, D5, D6, D7, D8) (R, error)) *Binder {
	reqs := []Requirement{
		RequirementOf[D1](),
		RequirementOf[D2](),
		RequirementOf[D3](),
		RequirementOf[D4](),
		RequirementOf[D5](),
		RequirementOf[D6](),
		RequirementOf[D7](),
		RequirementOf[D8](),
	}
	b.add(&binderEntry{
		key:      KeyOf[R](),
		requires: reqs,
		factory: func(deps []any) (any, error) {
			d1, err := safeAssert[D1](deps[0])
			if err != nil {
				return nil, err
			}
			d2, err := safeAssert[D2](deps[1])
			if err != nil {
				return nil, err
			}
			d3, err := safeAssert[D3](deps[2])
			if err != nil {
				return nil, err
			}
			d4, err := safeAssert[D4](deps[3])
			if err != nil {
				return nil, err
			}
			d5, err := safeAssert[D5](deps[4])
			if err != nil {
				return nil, err
			}
			d6, err := safeAssert[D6](deps[5])
			if err != nil {
				return nil, err
			}
			d7, err := safeAssert[D7](deps[6])
			if err != nil {
				return nil, err
			}
			d8, err := safeAssert[D8](deps[7])
			if err != nil {
				return nil, err
			}
			return factory(d1, d2, d3, d4, d5, d6, d7, d8)
		},
		origin: callerOrigin(1),
	})
	return b
}

func InjectFn9[R any, D1 any, D2 any, D3 any, D4 any, D5 any, D6 any, D7 any, D8 any, D9 any](b *Binder, factory func(D1, D2, D3, D4, D5, D6, D7, D8, D9) (R, error)) *Binder {
	reqs := []Requirement{
		RequirementOf[D1](),
		RequirementOf[D2](),
		RequirementOf[D3](),
		RequirementOf[D4](),
		RequirementOf[D5](),
		RequirementOf[D6](),
		RequirementOf[D7](),
		RequirementOf[D8](),
		RequirementOf[D9](),
	}
	b.add(&binderEntry{
		key:      KeyOf[R](),
		requires: reqs,
		factory: func(deps []any) (any, error) {
			d1, err := safeAssert[D1](deps[0])
			if err != nil {
				return nil, err
			}
			d2, err := safeAssert[D2](deps[1])
			if err != nil {
				return nil, err
			}
			d3, err := safeAssert[D3](deps[2])
			if err != nil {
				return nil, err
			}
			d4, err := safeAssert[D4](deps[3])
			if err != nil {
				return nil, err
			}
			d5, err := safeAssert[D5](deps[4])
			if err != nil {
				return nil, err
			}
			d6, err := safeAssert[D6](deps[5])
			if err != nil {
				return nil, err
			}
			d7, err := safeAssert[D7](deps[6])
			if err != nil {
				return nil, err
			}
			d8, err := safeAssert[D8](deps[7])
			if err != nil {
				return nil, err
			}
			d9, err := safeAssert[D9](deps[8])
			if err != nil {
				return nil, err
			}
			return factory(d1, d2, d3, d4, d5, d6, d7, d8, d9)
		},
		origin: callerOrigin(1),
	})
	return b
}

