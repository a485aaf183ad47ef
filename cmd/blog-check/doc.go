/* Draft docs:
*
* PIPELINE
* The checks always run in the same order, and everything after the
* self-test keeps going no matter what came before it - one broken record
* shouldn't hide the state of the others.
* * Self-Test: resolve, ping, and HTTPS-fetch a known-good host. Any failure
*   here is fatal: it means the environment is broken, so every later answer
*   would be about the network we're standing on, not the domain.
* * Nameserver Sanity: fetch the apex NS set; an NS host living inside the
*   domain itself (glue-style) is warned about, since it usually means no
*   authoritative zone is actually served. An empty answer is NOT flagged -
*   a flaky lookup mustn't be reported as a glue problem.
* * DNS Audit: for each expected CNAME (www, the blog subdomain, the Search
*   Console verification token) check the record exists locally, then
*   re-query it against three public resolvers and every authoritative NS
*   and report matching counts as propagation ratios. The verification
*   token additionally must NOT resolve to an A record: NXDOMAIN there is
*   the healthy state.
* * Root A-records: classify the apex as Blogger-managed (all four Blogger
*   addresses present), registrar-forwarded (the common forwarding
*   addresses), or invalid. Forwarding works but earns an advisory.
* * Redirect: Blogger-managed apexes must 301 to https://www.<domain>/
*   exactly. Skipped in the other two modes.
* * HTTPS Status: https://www must serve 200 and http://www must 301.
*
* EXIT CODE
* Zero when every flag-bearing check passed; otherwise the OR of one bit
* per failed stage. Warnings never contribute.
*
* FLAGS
* --advanced adds traceroute and subfinder output (when installed; silently
* skipped otherwise). --debug adds a dig +trace of the apex, the raw
* headers captured by the redirect check, and a dump of the run state.
* Neither flag ever changes a pass/fail outcome.
 */
package main
