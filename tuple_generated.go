package mydi

func GetTuple2[T1 any, T2 any](inj *Injector) (T1, T2, error) {
	var (
		zero1 T1
		zero2 T2
	)
	v1, err := Get[T1](inj)
	if err != nil {
		return zero1, zero2, err
	}
	v2, err := Get[T2](inj)
	if err != nil {
		return zero1, zero2, err
	}
	return v1, v2, nil
}

func GetTuple3[T1 any, T2 any, T3 any](inj *Injector) (T1, T2, T3, error) {
	var (
		zero1 T1
		zero2 T2
		zero3 T3
	)
	v1, err := Get[T1](inj)
	if err != nil {
		return zero1, zero2, zero3, err
	}
	v2, err := Get[T2](inj)
	if err != nil {
		return zero1, zero2, zero3, err
	}
	v3, err := Get[T3](inj)
	if err != nil {
		return zero1, zero2, zero3, err
	}
	return v1, v2, v3, nil
}

func GetTuple4[T1 any, T2 any, T3 any, T4 any](inj *Injector) (T1, T2, T3, T4, error) {
	var (
		zero1 T1
		zero2 T2
		zero3 T3
		zero4 T4
	)
	v1, err := Get[T1](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, err
	}
	v2, err := Get[T2](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, err
	}
	v3, err := Get[T3](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, err
	}
	v4, err := Get[T4](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, err
	}
	return v1, v2, v3, v4, nil
}

func GetTuple5[T1 any, T2 any, T3 any, T4 any, T5 any](inj *Injector) (T1, T2, T3, T4, T5, error) {
	var (
		zero1 T1
		zero2 T2
		zero3 T3
		zero4 T4
		zero5 T5
	)
	v1, err := Get[T1](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, err
	}
	v2, err := Get[T2](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, err
	}
	v3, err := Get[T3](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, err
	}
	v4, err := Get[T4](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, err
	}
	v5, err := Get[T5](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, err
	}
	return v1, v2, v3, v4, v5, nil
}

func GetTuple6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any](inj *Injector) (T1, T2, T3, T4, T5, T6, error) {
	var (
		zero1 T1
		zero2 T2
		zero3 T3
		zero4 T4
		zero5 T5
		zero6 T6
	)
	v1, err := Get[T1](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, err
	}
	v2, err := Get[T2](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, err
	}
	v3, err := Get[T3](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, err
	}
	v4, err := Get[T4](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, err
	}
	v5, err := Get[T5](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, err
	}
	v6, err := Get[T6](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, err
	}
	return v1, v2, v3, v4, v5, v6, nil
}

func GetTuple7[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any](inj *Injector) (T1, T2, T3, T4, T5, T6, T7, error) {
	var (
		zero1 T1
		zero2 T2
		zero3 T3
		zero4 T4
		zero5 T5
		zero6 T6
		zero7 T7
	)
	v1, err := Get[T1](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, err
	}
	v2, err := Get[T2](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, err
	}
	v3, err := Get[T3](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, err
	}
	v4, err := Get[T4](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, err
	}
	v5, err := Get[T5](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, err
	}
	v6, err := Get[T6](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, err
	}
	v7, err := Get[T7](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, err
	}
	return v1, v2, v3, v4, v5, v6, v7, nil
}

func GetTuple8[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any](inj *Injector) (T1, T2, T3, T4, T5, T6, T7, T8, error) {
	var (
		zero1 T1
		zero2 T2
		zero3 T3
		zero4 T4
		zero5 T5
		zero6 T6
		zero7 T7
		zero8 T8
	)
	v1, err := Get[T1](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, err
	}
	v2, err := Get[T2](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, err
	}
	v3, err := Get[T3](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, err
	}
	v4, err := Get[T4](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, err
	}
	v5, err := Get[T5](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, err
	}
	v6, err := Get[T6](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, err
	}
	v7, err := Get[T7](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, err
	}
	v8, err := Get[T8](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, err
	}
	return v1, v2, v3, v4, v5, v6, v7, v8, nil
}

func GetTuple9[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any](inj *Injector) (T1, T2, T3, T4, T5, T6, T7, T8, T9, error) {
	var (
		zero1 T1
		zero2 T2
		zero3 T3
		zero4 T4
		zero5 T5
		zero6 T6
		zero7 T7
		zero8 T8
		zero9 T9
	)
	v1, err := Get[T1](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, zero9, err
	}
	v2, err := Get[T2](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, zero9, err
	}
	v3, err := Get[T3](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, zero9, err
	}
	v4, err := Get[T4](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, zero9, err
	}
	v5, err := Get[T5](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, zero9, err
	}
	v6, err := Get[T6](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, zero9, err
	}
	v7, err := Get[T7](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, zero9, err
	}
	v8, err := Get[T8](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, zero9, err
	}
	v9, err := Get[T9](inj)
	if err != nil {
		return zero1, zero2, zero3, zero4, zero5, zero6, zero7, zero8, zero9, err
	}
	return v1, v2, v3, v4, v5, v6, v7, v8, v9, nil
}

