/*
Package attendancesdk provides a client SDK for the employee attendance service.

# Overview

An SDKClient wraps the service's JSON API. Authentication is a server-side
session carried in a cookie: SignIn stores the cookie in the client's jar and
every later call sends it, so each SDKClient acts as one admin.

	client := attendancesdk.NewSDKClient("http://localhost:5000")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Register and sign in
	_, err = client.SignUp(ctx, attendancesdk.SignupRequest{...})
	err = client.SignIn(ctx, attendancesdk.SigninRequest{Username: "alice", Password: "secret1"})

	// Register an employee and scan its badge
	badge, err := client.AddEmployee(ctx, attendancesdk.AddEmployeeRequest{Name: "Bob", Email: "bob@x.com", Phone: "555"})
	mark, err := client.MarkAttendance(ctx, strconv.FormatInt(badge.EmployeeID, 10))

# Errors

Any non-2xx response is returned as *APIError holding the status code, the
server's error message and the raw body. Failed attendance marks carry extra
fields; decode them with APIError.MarkError:

	_, err := client.MarkAttendance(ctx, "7")
	var apiErr *attendancesdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
		details, _ := apiErr.MarkError()
		fmt.Println("already marked as", details.Status)
	}

# Multi-factor authentication

Once TOTP is enabled with EnrollTOTP and VerifyTOTP, SignIn needs the current
code in SigninRequest.TOTPCode.

# Thread Safety

SDKClient is safe for concurrent use; the cookie jar is shared by all calls.
*/
package attendancesdk
