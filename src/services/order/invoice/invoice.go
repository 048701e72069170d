package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"shop-backoffice/src/services/order/domain"
)

// CompanyInfo is the seller identity printed on every invoice.
type CompanyInfo struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:    "Koel Shop",
		Address: "House #31, Road #17, Sector #13, Uttara, Dhaka",
		Email:   "sales@koelgroupbd.com",
		Phone:   "+8801791000000",
	}
}

// Renderer formats a finalized order into a printable HTML document with a
// client copy and an office copy. Rendering is a pure function of the order;
// the same order always produces byte-identical output.
type Renderer struct {
	company CompanyInfo
	tmpl    *template.Template
}

func NewRenderer(company CompanyInfo) *Renderer {
	tmpl := template.Must(template.New("invoice").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"lineTotal": func(line domain.CartLine) string {
			return fmt.Sprintf("%.2f", line.UnitPrice*float64(line.Quantity))
		},
	}).Parse(invoiceTemplate))
	return &Renderer{company: company, tmpl: tmpl}
}

type invoiceData struct {
	Copies  []string
	Order   domain.Order
	Company CompanyInfo
	Date    string
}

// Render produces the invoice document for an order.
func (r *Renderer) Render(order domain.Order) ([]byte, error) {
	data := invoiceData{
		Copies:  []string{"Client Copy", "Office Copy"},
		Order:   order,
		Company: r.company,
		Date:    order.OrderDate.Format("02/01/2006"),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render invoice for order %s: %w", order.OrderNumber, err)
	}
	return buf.Bytes(), nil
}

const invoiceTemplate = `<html>
<head>
<title>Invoice - Order {{.Order.OrderNumber}}</title>
<style>
@page { size: A4; margin: 20mm; }
body { font-family: 'Helvetica Neue', 'Arial', sans-serif; color: #333; margin: 0; padding: 0; }
.invoice-box { max-width: 800px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; font-size: 14px; color: #555; background: #f9f9f9; }
.invoice-subheading { color: #6c757d; font-size: 18px; font-weight: 600; margin-bottom: 15px; }
h1 { color: #007bff; font-size: 24px; font-weight: 700; margin: 0 0 15px 0; }
.invoice-header { display: flex; justify-content: space-between; margin-bottom: 12px; }
.company-info { text-align: right; }
.invoice-title { text-transform: uppercase; font-size: 18px; color: #007bff; margin-bottom: 10px; }
.details-table, .summary-table { width: 100%; margin-bottom: 10px; border-collapse: collapse; }
.details-table th, .details-table td, .summary-table th, .summary-table td { padding: 6px; border: none; }
.summary-table th, .details-table th { background-color: #f4f4f4; font-weight: 600; }
.summary-table td { text-align: right; }
.billing-info { display: flex; justify-content: space-between; }
.footer { margin-top: 15px; text-align: center; font-size: 10px; color: #777; }
</style>
</head>
<body>
{{- $order := .Order }}{{ $company := .Company }}{{ $date := .Date }}
{{- range .Copies }}
<div class="invoice-box">
  <div class="invoice-header">
    <div>
      <h1>Invoice</h1>
      <h3 class="invoice-subheading"># {{.}}</h3>
      <h2>Order Number: {{$order.OrderNumber}}</h2>
      <p>Order Date: {{$date}}</p>
    </div>
    <div class="company-info">
      <p><strong>{{$company.Name}}</strong></p>
      <p>{{$company.Address}}</p>
      <p>Email: {{$company.Email}}</p>
    </div>
  </div>
  <div class="billing-info">
    <div class="bill-to">
      <h3 class="invoice-title">Bill To</h3>
      <p><strong>{{$order.Customer.Name}}</strong></p>
      <p>{{$order.Customer.Address}}</p>
      {{- if $order.Customer.Email}}
      <p>Email: {{$order.Customer.Email}}</p>
      {{- end}}
      <p>Phone: {{$order.Customer.Phone}}</p>
    </div>
    <div class="company-info">
      <h3 class="invoice-title">Company Info</h3>
      <p><strong>{{$company.Name}}</strong></p>
      <p>{{$company.Address}}</p>
      <p>Email: {{$company.Email}}</p>
    </div>
  </div>
  <h3 class="invoice-title">Order Details</h3>
  <table class="details-table">
    <thead>
      <tr>
        <th>Product Name</th>
        <th>Quantity</th>
        <th>Unit Price (BDT)</th>
        <th>Total (BDT)</th>
      </tr>
    </thead>
    <tbody>
      {{- range $order.Lines}}
      <tr>
        <td>{{.Name}}</td>
        <td>{{.Quantity}}</td>
        <td>{{money .UnitPrice}}</td>
        <td>{{lineTotal .}}</td>
      </tr>
      {{- end}}
    </tbody>
  </table>
  <table class="summary-table">
    <tbody>
      <tr>
        <th>Subtotal (BDT):</th>
        <td>{{money $order.Subtotal}}</td>
      </tr>
      {{- if ne $order.Discount 0.0}}
      <tr>
        <th>Discount (BDT):</th>
        <td>- {{money $order.Discount}}</td>
      </tr>
      {{- end}}
      {{- if ne $order.Tax 0.0}}
      <tr>
        <th>Tax (BDT):</th>
        <td>{{money $order.Tax}}</td>
      </tr>
      {{- end}}
      <tr>
        <th>Final Amount (BDT):</th>
        <td><strong>{{money $order.FinalAmount}}</strong></td>
      </tr>
    </tbody>
  </table>
  <p class="footer">
    Thank you for your order! For any questions or concerns regarding this invoice, please contact us at
    {{$company.Phone}} or {{$company.Email}}.
  </p>
</div>
{{- end}}
</body>
</html>
`
