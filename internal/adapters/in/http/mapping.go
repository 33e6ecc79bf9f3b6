package http

import (
	"cannacommerce/internal/core/domain/model/document"
	"cannacommerce/internal/core/domain/model/kernel"
	"cannacommerce/internal/generated/servers"
)

func linesFromPayload(payloads []servers.DocumentLine, currency string) ([]document.Line, error) {
	lines := make([]document.Line, 0, len(payloads))
	for _, p := range payloads {
		unitPrice, err := kernel.MoneyFromString(p.UnitPrice, currency)
		if err != nil {
			return nil, err
		}
		lineTotal, err := kernel.MoneyFromString(p.LineTotal, currency)
		if err != nil {
			return nil, err
		}

		var description string
		if p.Description != nil {
			description = *p.Description
		}

		line, err := document.NewLine(p.LineNumber, p.Sku, description, p.Quantity, unitPrice, lineTotal)
		if err != nil {
			return nil, err
		}

		if p.Gtin != nil {
			gtin, gtinErr := kernel.NewGTIN(*p.Gtin)
			if gtinErr != nil {
				return nil, gtinErr
			}
			line, err = line.WithGTIN(gtin)
			if err != nil {
				return nil, err
			}
		}
		if p.BatchNumber != nil {
			line = line.WithBatchNumber(*p.BatchNumber)
		}
		if p.AllowOverShip != nil && *p.AllowOverShip {
			line = line.WithOverShipAllowed()
		}

		lines = append(lines, line)
	}

	return lines, nil
}

func buildPurchaseOrder(payload servers.NewPurchaseOrder) (*document.PurchaseOrder, error) {
	buyer, err := kernel.NewGLN(payload.BuyerGln)
	if err != nil {
		return nil, err
	}
	seller, err := kernel.NewGLN(payload.SellerGln)
	if err != nil {
		return nil, err
	}

	lines, err := linesFromPayload(payload.Lines, payload.Currency)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.MoneyFromString(payload.Subtotal, payload.Currency)
	if err != nil {
		return nil, err
	}
	taxTotal, err := kernel.MoneyFromString(payload.TaxTotal, payload.Currency)
	if err != nil {
		return nil, err
	}
	total, err := kernel.MoneyFromString(payload.Total, payload.Currency)
	if err != nil {
		return nil, err
	}

	po, err := document.NewPurchaseOrder(
		kernel.NewUUID(), payload.PoNumber, buyer, seller,
		lines, subtotal, taxTotal, total, payload.OrderDate)
	if err != nil {
		return nil, err
	}

	if payload.ShipToGln != nil {
		shipTo, glnErr := kernel.NewGLN(*payload.ShipToGln)
		if glnErr != nil {
			return nil, glnErr
		}
		if err = po.SetShipToGLN(shipTo); err != nil {
			return nil, err
		}
	}
	if payload.RequestedDeliveryDate != nil {
		if err = po.SetRequestedDeliveryDate(*payload.RequestedDeliveryDate); err != nil {
			return nil, err
		}
	}
	if payload.Notes != nil {
		if err = po.SetNotes(*payload.Notes); err != nil {
			return nil, err
		}
	}

	return po, nil
}

func buildAcknowledgment(payload servers.NewAcknowledgment) (*document.Acknowledgment, error) {
	status, err := document.AckStatusFromString(string(payload.Status))
	if err != nil {
		return nil, err
	}

	lines, err := linesFromPayload(payload.Lines, payload.Currency)
	if err != nil {
		return nil, err
	}

	ack, err := document.NewAcknowledgment(
		kernel.NewUUID(), payload.AckNumber, payload.PoNumber, status, lines, payload.AckDate)
	if err != nil {
		return nil, err
	}

	if payload.EstimatedShipDate != nil {
		if err = ack.SetEstimatedShipDate(*payload.EstimatedShipDate); err != nil {
			return nil, err
		}
	}

	return ack, nil
}

func buildShipNotice(payload servers.NewShipNotice) (*document.ShipNotice, error) {
	lines, err := linesFromPayload(payload.Lines, payload.Currency)
	if err != nil {
		return nil, err
	}

	asn, err := document.NewShipNotice(
		kernel.NewUUID(), payload.AsnNumber, payload.PoNumber, lines, payload.ShipDate)
	if err != nil {
		return nil, err
	}

	if payload.Sscc != nil {
		sscc, ssccErr := kernel.NewSSCC(*payload.Sscc)
		if ssccErr != nil {
			return nil, ssccErr
		}
		if err = asn.SetSSCC(sscc); err != nil {
			return nil, err
		}
	}
	if payload.Carrier != nil {
		var trackingNumber string
		if payload.TrackingNumber != nil {
			trackingNumber = *payload.TrackingNumber
		}
		if err = asn.SetCarrier(*payload.Carrier, trackingNumber); err != nil {
			return nil, err
		}
	}

	return asn, nil
}

func buildInvoice(payload servers.NewInvoice) (*document.Invoice, error) {
	lines, err := linesFromPayload(payload.Lines, payload.Currency)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.MoneyFromString(payload.Subtotal, payload.Currency)
	if err != nil {
		return nil, err
	}
	taxTotal, err := kernel.MoneyFromString(payload.TaxTotal, payload.Currency)
	if err != nil {
		return nil, err
	}
	total, err := kernel.MoneyFromString(payload.Total, payload.Currency)
	if err != nil {
		return nil, err
	}

	inv, err := document.NewInvoice(
		kernel.NewUUID(), payload.InvoiceNumber, payload.PoNumber,
		lines, subtotal, taxTotal, total, payload.InvoiceDate)
	if err != nil {
		return nil, err
	}

	if payload.PaymentTerms != nil {
		if err = inv.SetPaymentTerms(*payload.PaymentTerms); err != nil {
			return nil, err
		}
	}
	if payload.DueDate != nil {
		if err = inv.SetDueDate(*payload.DueDate); err != nil {
			return nil, err
		}
	}

	return inv, nil
}
