package snapshotting

// Candidate é uma origem possível de um valor, avaliada sob demanda
type Candidate[T any] struct {
	Source string
	Get    func() *T
}

// From cria um candidato a partir de um valor já calculado
func From[T any](source string, value *T) Candidate[T] {
	return Candidate[T]{
		Source: source,
		Get:    func() *T { return value },
	}
}

// Pick percorre os candidatos em ordem de prioridade e devolve o primeiro valor
// presente junto com a origem que venceu. Sem nenhum valor, devolve nil e "".
func Pick[T any](candidates ...Candidate[T]) (*T, string) {
	for _, c := range candidates {
		if c.Get == nil {
			continue
		}
		if v := c.Get(); v != nil {
			return v, c.Source
		}
	}
	return nil, ""
}

// PickOr funciona como Pick, mas usa fallbackSource quando nenhum candidato tem valor
func PickOr[T any](fallbackSource string, candidates ...Candidate[T]) (*T, string) {
	v, source := Pick(candidates...)
	if source == "" {
		return nil, fallbackSource
	}
	return v, source
}
