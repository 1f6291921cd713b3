// Package api provides the REST API server for the airport directory.
//
// Routes:
//
//	GET    /health                            liveness and record count
//	GET    /airports?page=&pageSize=          one page of records
//	POST   /airports                          create a record
//	GET    /airports/{icao}                   fetch a record
//	PATCH  /airports/{icao}                   merge changes into a record
//	DELETE /airports/{icao}                   remove a record
//	GET    /airports/{icao}/distance/{other}  great-circle distance in km
//
// # Response Format
//
// Successful responses are the bare JSON value: an array for list, an object
// for create/get/update. Delete answers with plain text.
//
// Every directory failure is a 400 whose body is a fixed message such as
// "invalid icao", sent as text/plain. Clients that send
// "Accept: application/json" get the message wrapped instead:
//
//	{
//	  "error": {
//	    "code": "not_found",
//	    "message": "invalid icao"
//	  }
//	}
package api
