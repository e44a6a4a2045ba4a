package types

// Envelope is the wire shape of every response. Success responses carry
// data/user/token as the operation dictates; error responses carry only
// success=false and a message.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Token      string      `json:"token,omitempty"`
	User       any         `json:"user,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Total      *int64      `json:"total,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Data       any         `json:"data,omitempty"`
}

// Pagination mirrors the listing contract: currentPage plus
// totalPages = ceil(total/limit).
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// OK wraps data in a success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage is a success envelope with only a message.
func OKMessage(msg string) Envelope {
	return Envelope{Success: true, Message: msg}
}

// OKList wraps a listing with its item count.
func OKList(data any, count int) Envelope {
	return Envelope{Success: true, Count: &count, Data: data}
}

// OKPage wraps one page of a listing with count, total and pagination.
func OKPage(data any, count int, total int64, page, totalPages int) Envelope {
	return Envelope{
		Success:    true,
		Count:      &count,
		Total:      &total,
		Pagination: &Pagination{CurrentPage: page, TotalPages: totalPages},
		Data:       data,
	}
}

// Auth is the register/login envelope: token plus the public user view.
func Auth(token string, user any) Envelope {
	return Envelope{Success: true, Token: token, User: user}
}

// Fail is the error envelope.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Message: msg}
}
