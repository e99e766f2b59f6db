/*
Package auth implements the master-key authorization scheme used by the
document-database REST API.

Step 1: build the canonical string

	<verb>\n<resourceType>\n<resourceId>\n<date>\n\n

where verb, resourceType and date are lower-cased and resourceId is kept as
is. The final empty line is reserved for a secondary token and is always
empty here.

Step 2: decode the base64 master key and compute HMAC-SHA256 of the
canonical string with it. Base64-encode the digest.

Step 3: build `type=master&ver=1.0&sig=<digest>` and percent-encode the whole
string. The result is sent as the Authorization header, together with the
same date in the x-ms-date header.

The server recomputes the signature, so any difference in case, newline
count or field order is reported by the server as 401 Unauthorized rather
than as a local error.
*/
package auth
