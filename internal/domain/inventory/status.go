package inventory

// Estados de existencia de un producto (servicio de dominio).
const (
	StatusNormal     = "normal"     // sin umbral configurado
	StatusSuficiente = "suficiente" // por encima del stock de seguridad
	StatusAlerta     = "alerta"     // en o por debajo del umbral, pero al menos la mitad
	StatusCritico    = "critico"    // estrictamente por debajo de la mitad del umbral
)

// Status clasifica la existencia actual frente al stock de seguridad.
// Reglas (cantidades enteras, comparación de mitad sin punto flotante):
//   - safetyStock == 0           -> normal
//   - quantity > safetyStock     -> suficiente
//   - 2*quantity >= safetyStock  -> alerta (incluye quantity == safetyStock)
//   - 2*quantity < safetyStock   -> critico
func Status(quantity, safetyStock int64) string {
	switch {
	case safetyStock == 0:
		return StatusNormal
	case quantity > safetyStock:
		return StatusSuficiente
	case 2*quantity >= safetyStock:
		return StatusAlerta
	default:
		return StatusCritico
	}
}

// BajoUmbral indica si el producto requiere atención (todo lo que no sea
// suficiente o normal).
func BajoUmbral(quantity, safetyStock int64) bool {
	s := Status(quantity, safetyStock)
	return s == StatusAlerta || s == StatusCritico
}
