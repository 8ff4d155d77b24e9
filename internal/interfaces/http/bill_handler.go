package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/U-Yash/Eyewear-Product-Management/internal/application/billing"
	"github.com/U-Yash/Eyewear-Product-Management/internal/application/dto"
)

// BillHandler maneja la generación y consulta de facturas (protegido).
type BillHandler struct {
	generate *billing.GenerateBillUseCase
	bills    *billing.BillsUseCase
	pdf      *billing.PDFUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(generate *billing.GenerateBillUseCase, bills *billing.BillsUseCase, pdf *billing.PDFUseCase) *BillHandler {
	return &BillHandler{generate: generate, bills: bills, pdf: pdf}
}

// Generate genera una factura de asignación y descuenta stock.
// POST /api/bills/generate
func (h *BillHandler) Generate(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.GenerateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	bill, err := h.generate.GenerateBill(c.Context(), userID, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// List lista facturas paginadas (solo cabeceras).
// GET /api/bills?limit=&offset=
func (h *BillHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	bills, err := h.bills.ListBills(c.Context(), page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(bills)
}

// GetByID obtiene el detalle completo de una factura.
// GET /api/bills/:id
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	bill, err := h.bills.GetBill(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(bill)
}

// UpdateStatus mueve la factura de PENDING a PAID, OVERDUE o CANCELLED.
// PATCH /api/bills/:id/status
func (h *BillHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.UpdateBillStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.bills.UpdateStatus(c.Context(), id, in.Status); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF descarga la representación gráfica de la factura.
// GET /api/bills/:id/pdf
func (h *BillHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	data, err := h.pdf.GenerateBillPDF(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bill-`+id+`.pdf"`)
	return c.Send(data)
}
