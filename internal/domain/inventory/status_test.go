package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/inventory"
)

// Umbral 100: los bordes importan. Exactamente en el umbral NO es suficiente,
// y exactamente la mitad sigue siendo alerta (crítico es estrictamente menor).
func TestStatus_BordesConUmbral100(t *testing.T) {
	assert.Equal(t, inventory.StatusSuficiente, inventory.Status(101, 100))
	assert.Equal(t, inventory.StatusAlerta, inventory.Status(100, 100),
		"cantidad igual al umbral no es suficiente")
	assert.Equal(t, inventory.StatusAlerta, inventory.Status(51, 100))
	assert.Equal(t, inventory.StatusAlerta, inventory.Status(50, 100),
		"exactamente la mitad del umbral es alerta")
	assert.Equal(t, inventory.StatusCritico, inventory.Status(49, 100))
	assert.Equal(t, inventory.StatusCritico, inventory.Status(0, 100))
}

// Sin umbral configurado todo es normal, incluida la existencia cero.
func TestStatus_SinUmbralEsNormal(t *testing.T) {
	assert.Equal(t, inventory.StatusNormal, inventory.Status(0, 0))
	assert.Equal(t, inventory.StatusNormal, inventory.Status(500, 0))
}

// Umbral impar: 2*quantity evita el punto flotante. Con umbral 5, la mitad
// es 2.5: cantidad 3 es alerta, cantidad 2 es crítico.
func TestStatus_UmbralImpar(t *testing.T) {
	assert.Equal(t, inventory.StatusAlerta, inventory.Status(3, 5))
	assert.Equal(t, inventory.StatusCritico, inventory.Status(2, 5))
}

func TestBajoUmbral(t *testing.T) {
	assert.False(t, inventory.BajoUmbral(30, 20), "suficiente no requiere atención")
	assert.False(t, inventory.BajoUmbral(10, 0), "sin umbral no requiere atención")
	assert.True(t, inventory.BajoUmbral(20, 20))
	assert.True(t, inventory.BajoUmbral(5, 20))
}
