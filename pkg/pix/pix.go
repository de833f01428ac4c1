// Package pix builds static BR Code payloads for the national instant-payment standard
package pix

import (
	"errors"
	"fmt"
	"strings"
)

// EMV field identifiers, emitted in this order
const (
	idPayloadFormat       = "00"
	idMerchantAccountInfo = "26"
	idMerchantCategory    = "52"
	idCurrency            = "53"
	idAmount              = "54"
	idCountryCode         = "58"
	idMerchantName        = "59"
	idMerchantCity        = "60"
	idAdditionalData      = "62"
	idCRC                 = "63"

	// Sub-fields of the merchant account information template
	idGUI         = "00"
	idKey         = "01"
	idDescription = "02"

	// Sub-field of the additional data template
	idTxID = "05"

	gui            = "br.gov.bcb.pix"
	payloadFormat  = "01"
	categoryOther  = "0000"
	currencyBRL    = "986"
	countryBrazil  = "BR"
	defaultTxID    = "***"
	maxName        = 25
	maxCity        = 15
	maxDescription = 72
)

// Payload describes a static PIX charge
type Payload struct {
	// Key is the receiver's PIX key (email, phone, document or random key)
	Key string
	// Description is an optional free-text shown to the payer
	Description string
	// MerchantName is the receiver's display name
	MerchantName string
	// MerchantCity is the receiver's city
	MerchantCity string
	// Amount is the charge value formatted with a dot decimal separator, e.g. "1234.56"
	// Empty means the payer chooses the amount
	Amount string
	// TxID is the transaction identifier; "***" when absent
	TxID string
}

// field renders one EMV TLV entry: id + 2-digit length + value
func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// Build assembles the full BR Code string including the trailing CRC
func (p Payload) Build() (string, error) {
	if p.Key == "" {
		return "", errors.New("pix key is required")
	}
	if p.MerchantName == "" {
		return "", errors.New("merchant name is required")
	}
	if p.MerchantCity == "" {
		return "", errors.New("merchant city is required")
	}

	name := truncate(p.MerchantName, maxName)
	city := truncate(p.MerchantCity, maxCity)
	description := truncate(p.Description, maxDescription)

	txID := p.TxID
	if txID == "" {
		txID = defaultTxID
	}

	var account strings.Builder
	account.WriteString(field(idGUI, gui))
	account.WriteString(field(idKey, p.Key))
	if description != "" {
		account.WriteString(field(idDescription, description))
	}

	var payload strings.Builder
	payload.WriteString(field(idPayloadFormat, payloadFormat))
	payload.WriteString(field(idMerchantAccountInfo, account.String()))
	payload.WriteString(field(idMerchantCategory, categoryOther))
	payload.WriteString(field(idCurrency, currencyBRL))
	if p.Amount != "" {
		payload.WriteString(field(idAmount, p.Amount))
	}
	payload.WriteString(field(idCountryCode, countryBrazil))
	payload.WriteString(field(idMerchantName, name))
	payload.WriteString(field(idMerchantCity, city))
	payload.WriteString(field(idAdditionalData, field(idTxID, txID)))

	// The CRC covers everything up to and including its own "6304" tag
	payload.WriteString(idCRC + "04")
	sum := ChecksumCCITTFalse(payload.String())

	return payload.String() + fmt.Sprintf("%04X", sum), nil
}

// ChecksumCCITTFalse computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) over data
func ChecksumCCITTFalse(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
