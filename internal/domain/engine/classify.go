package engine

// Status clasifica la salud de un producto o vendedor según cuánto regala.
type Status string

const (
	StatusHealthy Status = "healthy"
	StatusWatch   Status = "watch"
	StatusDanger  Status = "danger"
)

// ClientStatus clasifica la actividad de un cliente según su crecimiento
// intermensual.
type ClientStatus string

const (
	ClientGrowing   ClientStatus = "growing"
	ClientStable    ClientStatus = "stable"
	ClientDeclining ClientStatus = "declining"
	ClientInactive  ClientStatus = "inactive"
)

// ClassifyProduct clasifica un producto por ratio de obsequio g e impacto en
// margen m:
//
//	danger  si g > GiftRatioDanger  o  m > MarginImpactDanger
//	watch   si g > GiftRatioWatch   o  m > MarginImpactWatch
//	healthy en otro caso
//
// Se evalúa danger primero: ambas condiciones pueden cumplirse a la vez y el
// orden decide. Las comparaciones son estrictas: un ratio exactamente en el
// umbral no escala de nivel.
func ClassifyProduct(a Aggregate, th Thresholds) Status {
	g := a.GiftRatio()
	m := a.MarginImpact()
	switch {
	case g.GreaterThan(th.GiftRatioDanger) || m.GreaterThan(th.MarginImpactDanger):
		return StatusDanger
	case g.GreaterThan(th.GiftRatioWatch) || m.GreaterThan(th.MarginImpactWatch):
		return StatusWatch
	default:
		return StatusHealthy
	}
}

// ClassifySeller aplica la misma regla que ClassifyProduct: lo que importa es
// cuánto del volumen del vendedor se fue en obsequios.
func ClassifySeller(a Aggregate, th Thresholds) Status {
	return ClassifyProduct(a, th)
}

// ClassifyClient clasifica un cliente por su figura de crecimiento, evaluando
// en este orden:
//
//	inactive  si el ingreso actual y el anterior son ambos 0
//	growing   si el crecimiento supera GrowthUpPercent
//	declining si el crecimiento cae bajo GrowthDownPercent
//	stable    en otro caso
//
// Un cliente con ingreso actual 0 pero ingreso previo positivo cae en
// declining, no en inactive: la condición "ambos cero" no se cumple. Es una
// decisión definicional heredada del negocio, no un bug.
func ClassifyClient(g GrowthFigure, th Thresholds) ClientStatus {
	switch {
	case g.Current.IsZero() && g.Previous.IsZero():
		return ClientInactive
	case g.GrowthPercent.GreaterThan(th.GrowthUpPercent):
		return ClientGrowing
	case g.GrowthPercent.LessThan(th.GrowthDownPercent):
		return ClientDeclining
	default:
		return ClientStable
	}
}
